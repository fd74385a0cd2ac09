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
	"github.com/SENERGY-Platform/crate-source-manager/util/file_lock"
	"path"
	"path/filepath"
)

type Handler struct {
	tools       []handler.Tool
	lockDirPath string
}

func New(tools []handler.Tool, lockDirPath string) (*Handler, error) {
	if !filepath.IsAbs(lockDirPath) {
		return nil, fmt.Errorf("path must be absolute: %s", lockDirPath)
	}
	return &Handler{
		tools:       tools,
		lockDirPath: lockDirPath,
	}, nil
}

func (h *Handler) List() []model.ToolInfo {
	var tools []model.ToolInfo
	for _, tool := range h.tools {
		installed, err := tool.IsInstalled()
		if err != nil {
			util.Logger.Errorf("checking tool %s failed: %s", tool.Name(), err)
		}
		tools = append(tools, model.ToolInfo{
			Name:       tool.Name(),
			BinaryPath: tool.BinaryPath(),
			Installed:  installed,
		})
	}
	return tools
}

// InstallAll brings every tool to an installed state in declaration order.
// A failing tool aborts the run so later tools never install on top of a
// broken prerequisite.
func (h *Handler) InstallAll(ctx context.Context) error {
	for _, tool := range h.tools {
		if err := h.install(ctx, tool); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) install(ctx context.Context, tool handler.Tool) error {
	installed, err := tool.IsInstalled()
	if err != nil {
		return model.NewInternalError(err)
	}
	if installed {
		util.Logger.Infof("tool %s is installed, trying to update it", tool.Name())
		if err = tool.Update(ctx); err != nil {
			return model.NewInternalError(err)
		}
		return nil
	}
	util.Logger.Infof("tool %s is missing, installing it", tool.Name())
	lockPath := path.Join(h.lockDirPath, fmt.Sprintf(".tool-%s.lock", tool.Name()))
	err = file_lock.WithLock(lockPath, fmt.Sprintf("install tool %s", tool.Name()), func() error {
		installed, err := tool.IsInstalled()
		if err != nil {
			return err
		}
		if installed {
			return nil
		}
		if err = tool.Install(ctx); err != nil {
			return err
		}
		installed, err = tool.IsInstalled()
		if err != nil {
			return err
		}
		if !installed {
			return fmt.Errorf("tool %s is still missing after install", tool.Name())
		}
		return nil
	})
	if err != nil {
		return model.NewInternalError(err)
	}
	return nil
}
