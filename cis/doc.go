// Package cis decodes CIS world-edit logs: chunk payloads carrying
// palette-compressed block change lists, and the region container files that
// multiplex up to 256 of them.
//
// The decoder is read-only and stateless. Each call builds fresh output from
// its input bytes; nothing is shared across decodes, so callers may decode
// region slots in parallel.
//
// Typical use:
//
//	res, _ := cis.LoadMapping("global_ids.json")
//	r, _ := cis.Open("r.0.0.cis")
//	defer r.Close()
//	it := r.Chunks(res)
//	for {
//		dc, err := it.Next()
//		if err == io.EOF {
//			break
//		}
//		if dc.Err != nil {
//			continue // corrupt slot, isolated
//		}
//		use(dc.X, dc.Z, dc.Chunk)
//	}
package cis
