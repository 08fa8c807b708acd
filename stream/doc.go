// Package stream provides the WBXML pull decoder and builder encoder.
//
// Both work on fully buffered documents and track open elements with a
// [State]. Only the element, inline string and opaque grammar used by sync
// protocols is supported: attributes, entities, string tables, processing
// instructions and extension tokens are rejected.
//
// # Example: Encoding
//
//	enc, err := stream.NewEncoder(table)
//	if err != nil {
//	    return err
//	}
//	enc.Start(sync).
//	    Start(collection).
//	    Data(syncKey, "0").
//	    Tag(getChanges).
//	    End().
//	    End()
//	if err := enc.Finish(); err != nil {
//	    return err
//	}
//	body := enc.Bytes()
//
// Encoder calls never return errors: the first failure is latched and
// reported by Finish.
//
// # Example: Decoding
//
//	dec, err := stream.NewDecoder(body, table)
//	if err != nil {
//	    return err
//	}
//	for {
//	    tag, err := dec.NextTag(token.StartDocument)
//	    if err != nil {
//	        return err
//	    }
//	    if tag == token.EndDocument {
//	        break
//	    }
//	    if tag == syncKey {
//	        key, err := dec.ReadText()
//	        ...
//	    }
//	}
//
// # Chaining
//
// [Decoder.Chain] attaches a second decoder to the same input position and
// open element state, so that a region of the document can be read with a
// different [codepage.Dictionary] without reading the header again. The two
// decoders must be used one after the other, never concurrently.
package stream
