// Package region reads and writes region files (.mca, .mcr).
//
// A region file stores up to 1024 chunks of a 32×32 chunk area. Each chunk is an
// independently compressed NBT document. Region keeps the compressed payloads
// and decodes a chunk only when its Document or Root is requested.
//
// # Basic Usage
//
//	r, err := region.Read(data)
//	if err != nil {
//	    return err
//	}
//	for c := range r.All() {
//	    root, err := c.Root()
//	    if err != nil {
//	        continue
//	    }
//	    fmt.Println(c.X(), c.Z(), root.GetString("Status"))
//	}
//	out, err := r.Write()
//
// # Editing Chunks
//
// The document returned by Chunk.Document or Chunk.Root may be edited in place.
// Region.Write calls Chunk.Sync on every chunk, which re-encodes the payload of
// any chunk whose tree was handed out. Call Sync directly to refresh RawData,
// Checksum or Size before writing. SetDocument and NewChunkFromDocument keep a
// copy of the document they are given.
//
// # Leniency
//
// Reading tolerates damaged files: slots that point outside the file, have a
// zero length or an unknown compression id are dropped. Pass WithLogger to see
// which slots were skipped.
//
// # Layout
//
// Write always produces a compact file: chunks are stored contiguously from
// sector 2 in slot order (x + z*32). See package section for the byte layout.
package region
