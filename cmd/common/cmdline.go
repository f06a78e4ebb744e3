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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/goeas/schema"
)

type GlobalFlags struct {
	Flagset *flag.FlagSet
	Schema  string
	Debug   bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Schema,
		"schema",
		"",
		"schema string of comma-separated 'type name' field declarations",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.Schema == "" {
		fmt.Printf("You must specify -schema\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	if f.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// CreateSchemaEncoder builds a SchemaEncoder for the -schema flag value
func CreateSchemaEncoder(f *GlobalFlags) *schema.SchemaEncoder {
	encoder, err := schema.New(f.Schema)
	if err != nil {
		fmt.Printf("Invalid schema specified: %s\n", err)
		os.Exit(1)
	}
	slog.Debug(
		"parsed schema",
		"schema", f.Schema,
		"fields", len(encoder.Items()),
	)
	return encoder
}
