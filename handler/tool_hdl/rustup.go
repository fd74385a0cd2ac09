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
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/crate-source-manager/util/context_hdl"
	"io"
	"os"
	"path"
	"runtime"
	"time"
)

type RustupTool struct {
	cargoHomePath  string
	rustupHomePath string
	toolchain      string
	profile        string
	distBaseUrl    string
	dlClient       handler.DownloadClient
	httpTimeout    time.Duration
	executor       handler.CmdExecutor
}

func NewRustupTool(cargoHomePath, rustupHomePath, toolchain, profile, distBaseUrl string, dlClient handler.DownloadClient, httpTimeout time.Duration, executor handler.CmdExecutor) *RustupTool {
	return &RustupTool{
		cargoHomePath:  cargoHomePath,
		rustupHomePath: rustupHomePath,
		toolchain:      toolchain,
		profile:        profile,
		distBaseUrl:    distBaseUrl,
		dlClient:       dlClient,
		httpTimeout:    httpTimeout,
		executor:       executor,
	}
}

func (t *RustupTool) Name() string {
	return "rustup"
}

func (t *RustupTool) BinaryPath() string {
	return util.NormalizePath(path.Join(t.cargoHomePath, "bin", "rustup"+exeSuffix()))
}

func (t *RustupTool) IsInstalled() (bool, error) {
	info, err := os.Stat(t.BinaryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0, nil
}

func (t *RustupTool) Install(ctx context.Context) error {
	if err := os.MkdirAll(t.cargoHomePath, 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(t.rustupHomePath, 0755); err != nil {
		return err
	}
	target, err := hostTarget()
	if err != nil {
		return err
	}
	initPath, err := t.downloadInit(ctx, target)
	if err != nil {
		return fmt.Errorf("unable to install rustup: %s", err)
	}
	defer os.RemoveAll(path.Dir(initPath))
	err = t.executor.Run(ctx, initPath, []string{"-y", "--no-modify-path", "--default-toolchain", t.toolchain, "--profile", t.profile}, t.env())
	if err != nil {
		return fmt.Errorf("unable to install rustup: %s", err)
	}
	return nil
}

func (t *RustupTool) Update(ctx context.Context) error {
	if err := t.executor.Run(ctx, t.BinaryPath(), []string{"self", "update"}, t.env()); err != nil {
		return fmt.Errorf("unable to update rustup: %s", err)
	}
	if err := t.executor.Run(ctx, t.BinaryPath(), []string{"update", t.toolchain}, t.env()); err != nil {
		return fmt.Errorf("unable to update toolchain %s: %s", t.toolchain, err)
	}
	return nil
}

func (t *RustupTool) env() map[string]string {
	return map[string]string{
		"CARGO_HOME":  t.cargoHomePath,
		"RUSTUP_HOME": t.rustupHomePath,
	}
}

func (t *RustupTool) downloadInit(ctx context.Context, target string) (string, error) {
	ch := context_hdl.New()
	defer ch.CancelAll()
	body, err := t.dlClient.Get(ch.Add(context.WithTimeout(ctx, t.httpTimeout)), fmt.Sprintf("%s/%s/rustup-init%s", t.distBaseUrl, target, exeSuffix()))
	if err != nil {
		return "", err
	}
	defer body.Close()
	tmpDir, err := os.MkdirTemp("", "rustup-init")
	if err != nil {
		return "", err
	}
	initPath := path.Join(tmpDir, "rustup-init"+exeSuffix())
	file, err := os.OpenFile(initPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		os.RemoveAll(tmpDir)
		return "", err
	}
	_, err = io.Copy(file, body)
	if cErr := file.Close(); cErr != nil && err == nil {
		err = cErr
	}
	if err != nil {
		os.RemoveAll(tmpDir)
		return "", err
	}
	return initPath, nil
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

func hostTarget() (string, error) {
	key := runtime.GOOS + "/" + runtime.GOARCH
	target, ok := hostTargets[key]
	if !ok {
		return "", model.NewInternalError(fmt.Errorf("no rust target for platform %s", key))
	}
	return target, nil
}

var hostTargets = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"linux/arm":     "armv7-unknown-linux-gnueabihf",
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"windows/amd64": "x86_64-pc-windows-msvc",
}
