package bookfetch

// BookWriter is the append-only output document of a run.
// Writes are pending until Commit makes them durable; Abort discards them.
// Exactly one of Commit or Abort must be called.
type BookWriter interface {
	WriteParagraph(text string) error
	Commit() error
	Abort() error
}
