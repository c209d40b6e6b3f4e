// Package xml is an alternative to the standard library `encoding/xml` tokenizer, and the reading
// half of the xmlsource module.
//
// This package focuses on reducing allocations as much as possible through the use of buffers and
// reusable objects. Identifiers are deduplicated twice: every Decoder returns the same *Name for
// a repeated tag or attribute name, and the strings inside a Name are canonicalized through an
// intern.Cache shared by all decoders of the process unless told otherwise.
//
// The sibling packages build on top of it:
//
//    intern     canonical string cache used for names and namespace URIs
//    sax        push-style event handlers and the XMLReader surface
//    bind       exposes a marshalled object as a sax.XMLReader
//    saxwriter  writes sax events back out as XML
//
// Compared to the standard library `encoding/xml` package, after manually extracting raw tokens as
// well as applying the pending patches from the XML issue about slow parsing, this package is faster
// and uses much less memory. This difference gets magnified with larger files.
package xml
