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

package crate_hdl

import (
	"context"
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/handler"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"io/fs"
	"os"
	"path"
	"time"
)

const (
	registrySourcesDir = "cratesio-sources"
	gitReposDir        = "git-repos"
)

type Handler struct {
	cacheDirPath  string
	cratesBaseUrl string
	dlClient      handler.DownloadClient
	httpTimeout   time.Duration
	perm          fs.FileMode
}

func New(cacheDirPath, cratesBaseUrl string, dlClient handler.DownloadClient, httpTimeout time.Duration, perm fs.FileMode) (*Handler, error) {
	if !path.IsAbs(cacheDirPath) {
		return nil, fmt.Errorf("cache dir path must be absolute")
	}
	return &Handler{
		cacheDirPath:  cacheDirPath,
		cratesBaseUrl: cratesBaseUrl,
		dlClient:      dlClient,
		httpTimeout:   httpTimeout,
		perm:          perm,
	}, nil
}

func (h *Handler) Init() error {
	if err := os.MkdirAll(path.Join(h.cacheDirPath, registrySourcesDir), h.perm); err != nil {
		return err
	}
	if err := os.MkdirAll(path.Join(h.cacheDirPath, gitReposDir), h.perm); err != nil {
		return err
	}
	return nil
}

// Fetch ensures a cached copy of the crate's source exists. It is safe to
// call repeatedly, a satisfied cache entry is left untouched.
func (h *Handler) Fetch(ctx context.Context, crate model.Crate) error {
	if err := crate.Validate(); err != nil {
		return model.NewInvalidInputError(err)
	}
	switch crate.Type {
	case model.CrateTypeRegistry:
		return h.fetchRegistry(ctx, crate)
	case model.CrateTypeGit:
		return h.fetchGit(ctx, crate)
	}
	// local crates have nothing to fetch
	return nil
}

// Purge removes the cached artifact of the crate if present.
func (h *Handler) Purge(ctx context.Context, crate model.Crate) error {
	if err := crate.Validate(); err != nil {
		return model.NewInvalidInputError(err)
	}
	switch crate.Type {
	case model.CrateTypeRegistry:
		return h.purgeRegistry(crate)
	case model.CrateTypeGit:
		return h.purgeGit(crate)
	}
	// no cache to purge for local crates
	return nil
}

// CopySourceTo materializes the crate's source tree in dstPath. An existing
// destination is removed first, a failing copy removes it again so no partial
// tree survives as seemingly valid build input.
func (h *Handler) CopySourceTo(ctx context.Context, crate model.Crate, dstPath string) error {
	if err := crate.Validate(); err != nil {
		return model.NewInvalidInputError(err)
	}
	if !path.IsAbs(dstPath) {
		return model.NewInvalidInputError(fmt.Errorf("destination path must be absolute"))
	}
	if _, err := os.Stat(dstPath); err == nil {
		util.Logger.Infof("crate source directory %s already exists, cleaning it up", dstPath)
		if err = os.RemoveAll(dstPath); err != nil {
			return model.NewInternalError(err)
		}
	}
	var err error
	switch crate.Type {
	case model.CrateTypeRegistry:
		err = h.copyRegistry(crate, dstPath)
	case model.CrateTypeGit:
		err = h.copyGit(crate, dstPath)
	case model.CrateTypeLocal:
		err = h.copyLocal(crate, dstPath)
	}
	if err != nil {
		os.RemoveAll(dstPath)
		return err
	}
	return nil
}
