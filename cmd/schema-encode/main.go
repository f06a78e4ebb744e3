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
	"github.com/blinklabs-io/goeas/schema"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func main() {
	// Parse commandline
	f := common.NewGlobalFlags()
	f.Parse()
	encoder := common.CreateSchemaEncoder(f)

	// Read the field values as a JSON list of {name, type, value} objects
	// from stdin. UseNumber keeps large integers intact instead of going
	// through float64.
	var fields []schema.DataField
	dec := json.NewDecoder(os.Stdin)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		fmt.Printf("ERROR: failed to parse field values: %s\n", err)
		os.Exit(1)
	}

	encoded, err := encoder.EncodeData(fields)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", hexutil.Encode(encoded))
}
