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

package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gobtc"
	"github.com/blinklabs-io/gobtc/primitive"
	"github.com/blinklabs-io/gobtc/tag"
	"github.com/spf13/pflag"
)

type GlobalFlags struct {
	Flagset   *pflag.FlagSet
	ByteOrder string
	MaxDepth  int
	Debug     bool
	// Set by Parse
	Order  primitive.ByteOrder
	Logger *slog.Logger
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: pflag.NewFlagSet(os.Args[0], pflag.ExitOnError),
	}
	f.Flagset.StringVarP(
		&f.ByteOrder,
		"byte-order",
		"o",
		primitive.DefaultByteOrder.String(),
		"byte order of documents (big or little)",
	)
	f.Flagset.IntVar(
		&f.MaxDepth,
		"max-depth",
		tag.DefaultMaxDepth,
		"maximum compound nesting when decoding, 0 disables the limit",
	)
	f.Flagset.BoolVarP(&f.Debug, "debug", "d", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	order, err := primitive.ParseByteOrder(f.ByteOrder)
	if err != nil {
		fmt.Printf("Invalid byte order specified: %s\n", err)
		os.Exit(1)
	}
	f.Order = order
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	f.Logger = slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
	slog.SetDefault(f.Logger)
}

// Options returns the document options matching the parsed flags
func (f *GlobalFlags) Options() []btc.OptionFunc {
	return []btc.OptionFunc{
		btc.WithByteOrder(f.Order),
		btc.WithMaxDepth(f.MaxDepth),
		btc.WithLogger(f.Logger),
	}
}
