// Package textbuf accumulates generated source-like text in memory and
// writes it out wrapped in a header and footer.
//
// # Overview
//
// A Buffer is append-only. Callers write lines, tabs, comments and
// section dividers, then render or persist the result:
//
//	buf := textbuf.New()
//	buf.SetHeader("// Code generated by quill. DO NOT EDIT.")
//	buf.WriteNewSection("Types", 0)
//	buf.WriteLine("type User struct{}", 0)
//
//	if err := buf.Persist(ctx, storage.NewOSWriter(), "user.go", nil); err != nil {
//	    return err
//	}
//
// # Rendering
//
// Rendered output is always header + "\n" + content + "\n" + footer.
// Empty headers and footers still contribute their newline.
//
// # Comments
//
// WriteComment does not append a newline. Follow it with WriteLine("", 0)
// or Write("\n") when the comment should end the line.
//
// # Persisting
//
// Persist and PersistAsync render a snapshot before handing it to a
// storage.Writer. When an error handler is supplied, write failures go to
// it exclusively. Without one, the error is returned to the caller.
//
// A Buffer is meant for a single owner. Guard it externally if it must be
// shared between goroutines.
package textbuf
