// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xml_test

import (
	stdxml "encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	xml "github.com/Goodwine/xmlsource"
	"github.com/Goodwine/xmlsource/bind"
	"github.com/Goodwine/xmlsource/intern"
	"github.com/Goodwine/xmlsource/saxwriter"
)

// This example decodes two documents with separate decoders that share one name cache, so the
// second document reuses the strings of the first.
func Example_sharedNames() {
	names := intern.New()
	for _, doc := range []string{`<item sku="a1"/>`, `<item sku="b2"/>`} {
		d := xml.NewDecoder(strings.NewReader(doc))
		d.Names = names
		for {
			tok, err := d.Token()
			if err != nil {
				// Decoding completes when EOF is returned.
				if errors.Is(err, io.EOF) {
					break
				}
				log.Fatal(err)
			}
			if tag, ok := tok.(*xml.StartTag); ok {
				fmt.Printf("%s %s=%s\n", tag.Name, tag.Attr[0].Name, tag.Attr[0].Value)
			}
		}
	}

	st := names.Stats()
	fmt.Printf("hits: %d, misses: %d, size: %d\n", st.Hits, st.Misses, st.Size)

	// Output:
	// item sku=a1
	// item sku=b2
	// hits: 2, misses: 2, size: 2
}

// This example marshals a value through a SAX source and writes the events back out as XML.
func Example_marshalToSAX() {
	type note struct {
		XMLName stdxml.Name `xml:"urn:notes note"`
		To      string      `xml:"to,attr"`
		Body    string      `xml:"body"`
	}

	ctx := bind.NewXMLContext(bind.WithNames(intern.New()))
	src, err := bind.NewSource(ctx, &note{To: "Tove", Body: "Remember the milk"})
	if err != nil {
		log.Fatal(err)
	}
	var out strings.Builder
	if err := saxwriter.Copy(&out, src.Reader(), src.Input()); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.String())

	// Output:
	// <note xmlns="urn:notes" to="Tove"><body>Remember the milk</body></note>
}
