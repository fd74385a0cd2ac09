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

package cmd_exec

import (
	"bytes"
	"context"
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"os"
	"os/exec"
	"strings"
)

type Executor struct{}

func New() *Executor {
	return &Executor{}
}

// Run executes a command, waits for it to finish and surfaces a non-zero
// exit together with the tail of its combined output. Extra environment
// variables are appended to the current process environment.
func (e *Executor) Run(ctx context.Context, name string, args []string, env map[string]string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	util.Logger.Debugf("executing '%s %s'", name, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command '%s' failed: %s (%s)", name, err, outputTail(&output))
	}
	return nil
}

func outputTail(b *bytes.Buffer) string {
	const max = 512
	s := strings.TrimSpace(b.String())
	if len(s) > max {
		s = "..." + s[len(s)-max:]
	}
	if s == "" {
		s = "no output"
	}
	return s
}
