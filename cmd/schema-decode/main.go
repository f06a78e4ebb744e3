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
	"encoding/json"
	"fmt"
	"os"

	"github.com/blinklabs-io/goeas/cmd/common"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func main() {
	// Parse commandline
	f := common.NewGlobalFlags()
	var dataHex string
	f.Flagset.StringVar(
		&dataHex,
		"data",
		"",
		"hex-encoded data blob to decode",
	)
	f.Parse()
	encoder := common.CreateSchemaEncoder(f)

	if dataHex == "" {
		fmt.Printf("You must specify -data\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	data, err := hexutil.Decode(dataHex)
	if err != nil {
		fmt.Printf("ERROR: failed to parse -data: %s\n", err)
		os.Exit(1)
	}

	decoded, err := encoder.DecodeData(data)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		fmt.Printf("ERROR: failed to render decoded fields: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", out)
}
