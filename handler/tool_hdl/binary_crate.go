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
	"context"
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/handler"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"os"
	"path"
)

// BinaryCrateTool is a tool distributed as a crate on crates.io and
// installed with cargo into the shared cargo home.
type BinaryCrateTool struct {
	crate          string
	binary         string
	cargoHomePath  string
	rustupHomePath string
	executor       handler.CmdExecutor
}

func NewBinaryCrateTool(crate, binary, cargoHomePath, rustupHomePath string, executor handler.CmdExecutor) *BinaryCrateTool {
	return &BinaryCrateTool{
		crate:          crate,
		binary:         binary,
		cargoHomePath:  cargoHomePath,
		rustupHomePath: rustupHomePath,
		executor:       executor,
	}
}

func (t *BinaryCrateTool) Name() string {
	return t.crate
}

func (t *BinaryCrateTool) BinaryPath() string {
	return util.NormalizePath(path.Join(t.cargoHomePath, "bin", t.binary+exeSuffix()))
}

func (t *BinaryCrateTool) IsInstalled() (bool, error) {
	info, err := os.Stat(t.BinaryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0, nil
}

func (t *BinaryCrateTool) Install(ctx context.Context) error {
	if err := t.executor.Run(ctx, t.cargoPath(), []string{"install", t.crate}, t.env()); err != nil {
		return fmt.Errorf("unable to install %s: %s", t.crate, err)
	}
	return nil
}

func (t *BinaryCrateTool) Update(ctx context.Context) error {
	if err := t.executor.Run(ctx, t.cargoPath(), []string{"install", "--force", t.crate}, t.env()); err != nil {
		return fmt.Errorf("unable to update %s: %s", t.crate, err)
	}
	return nil
}

func (t *BinaryCrateTool) cargoPath() string {
	return util.NormalizePath(path.Join(t.cargoHomePath, "bin", "cargo"+exeSuffix()))
}

func (t *BinaryCrateTool) env() map[string]string {
	return map[string]string{
		"CARGO_HOME":  t.cargoHomePath,
		"RUSTUP_HOME": t.rustupHomePath,
	}
}
