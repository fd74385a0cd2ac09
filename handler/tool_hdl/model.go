/*
 * Copyright 2024 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tool_hdl

import (
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/handler"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	ToolTypeRustup      = "rustup"
	ToolTypeBinaryCrate = "binary_crate"
)

type ToolDef struct {
	Type   string `yaml:"type"`
	Crate  string `yaml:"crate"`
	Binary string `yaml:"binary"`
}

func LoadDefs(path string) ([]ToolDef, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var defs []ToolDef
	decoder := yaml.NewDecoder(file)
	if err = decoder.Decode(&defs); err != nil {
		return nil, err
	}
	return defs, nil
}

type ToolDeps struct {
	CargoHomePath  string
	RustupHomePath string
	Toolchain      string
	Profile        string
	DistBaseUrl    string
	DlClient       handler.DownloadClient
	HttpTimeout    time.Duration
	Executor       handler.CmdExecutor
}

// NewTools builds tools in the order the descriptor file lists them, which
// is also the install order.
func NewTools(defs []ToolDef, deps ToolDeps) ([]handler.Tool, error) {
	var tools []handler.Tool
	for _, def := range defs {
		switch def.Type {
		case ToolTypeRustup:
			tools = append(tools, NewRustupTool(deps.CargoHomePath, deps.RustupHomePath, deps.Toolchain, deps.Profile, deps.DistBaseUrl, deps.DlClient, deps.HttpTimeout, deps.Executor))
		case ToolTypeBinaryCrate:
			if def.Crate == "" {
				return nil, fmt.Errorf("missing crate name for tool type '%s'", def.Type)
			}
			binary := def.Binary
			if binary == "" {
				binary = def.Crate
			}
			tools = append(tools, NewBinaryCrateTool(def.Crate, binary, deps.CargoHomePath, deps.RustupHomePath, deps.Executor))
		default:
			return nil, fmt.Errorf("unknown tool type '%s'", def.Type)
		}
	}
	return tools, nil
}
