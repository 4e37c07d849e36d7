// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/blinklabs-io/gobtc"
	"github.com/blinklabs-io/gobtc/cbor"
	"github.com/blinklabs-io/gobtc/cmd/common"
	"github.com/blinklabs-io/gobtc/tag"
)

type dumpFlags struct {
	*common.GlobalFlags
	cbor         bool
	digest       bool
	writeExample string
}

func main() {
	// Parse commandline
	f := dumpFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.BoolVar(&f.cbor, "cbor", false, "also show the document transcoded to CBOR")
	f.Flagset.BoolVar(&f.digest, "digest", false, "show the BLAKE2b-256 digest of each document")
	f.Flagset.StringVar(
		&f.writeExample,
		"write-example",
		"",
		"write an example document to the given path and exit",
	)
	f.Flagset.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>...\n\n", os.Args[0])
		f.Flagset.PrintDefaults()
	}
	f.Parse()

	if f.writeExample != "" {
		if err := writeExample(f, f.writeExample); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return
	}

	files := f.Flagset.Args()
	if len(files) == 0 {
		f.Flagset.Usage()
		os.Exit(1)
	}
	failed := false
	for _, file := range files {
		if err := dumpFile(f, file); err != nil {
			fmt.Printf("ERROR: %s: %s\n", file, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dumpFile(f dumpFlags, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	doc, err := btc.Decode(data, f.Options()...)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%d bytes, %d entries):\n", file, len(data), doc.Size())
	fmt.Println(doc.Dump(0))
	if f.digest {
		digest, err := btc.Digest(doc, f.Options()...)
		if err != nil {
			return err
		}
		fmt.Printf("Digest: %s\n", hex.EncodeToString(digest[:]))
	}
	if f.cbor {
		cborData, err := cbor.ToCbor(doc)
		if err != nil {
			return err
		}
		var decoded any
		if _, err := cbor.Decode(cborData, &decoded); err != nil {
			return err
		}
		fmt.Printf("CBOR (%d bytes):\n", len(cborData))
		fmt.Print(cbor.DumpCborStructure(decoded, ""))
	}
	return nil
}

func writeExample(f dumpFlags, path string) error {
	doc := tag.NewCompound()
	other := tag.NewCompound()
	longArr := make([]uint32, 10)
	for i := range longArr {
		longArr[i] = uint32(i)
	}
	steps := []error{
		doc.SetInt("someint", 2133),
		doc.SetDouble("doub", 2.132243),
		doc.SetCompound("other_tag", other),
		doc.SetString("str", "hello world!"),
		other.SetFloat("f_valued", 3.24123443e-11),
		other.SetDouble("d_valued", 0.324123443e-10),
		other.SetIntArray("longarr", longArr),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := btc.Write(out, doc, f.Options()...); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote example document to %s\n", path)
	return nil
}
