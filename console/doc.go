// Package console is an optional labelled log front end.
//
// A Console formats "[LABEL]" messages (INITIALIZED, FETCH, INFO, LOAD,
// ERROR, LOG or a custom label, each with a colour) and hands them to a
// Sink. The default sink writes through the iva logger; WriterSink prints
// colourised lines to any io.Writer.
//
//	c := console.New(console.NewWriterSink(os.Stdout, false))
//	c.Initialize("sync job")
//	c.Error("fetch failed", err, "attempt", 2)
//
// The other iva packages never log through a Console.
package console
