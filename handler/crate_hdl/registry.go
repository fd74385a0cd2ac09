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
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/crate-source-manager/util/archive"
	"github.com/SENERGY-Platform/crate-source-manager/util/context_hdl"
	"github.com/SENERGY-Platform/crate-source-manager/util/file_lock"
	"io"
	"os"
	"path"
)

func (h *Handler) cachePath(crate model.Crate) string {
	return path.Join(h.cacheDirPath, registrySourcesDir, crate.Name, fmt.Sprintf("%s-%s.crate", crate.Name, crate.Version))
}

func (h *Handler) fetchRegistry(ctx context.Context, crate model.Crate) error {
	local := h.cachePath(crate)
	if _, err := os.Stat(local); err == nil {
		util.Logger.Infof("crate %s %s is already in cache", crate.Name, crate.Version)
		return nil
	}
	if err := os.MkdirAll(path.Dir(local), h.perm); err != nil {
		return model.NewInternalError(err)
	}
	err := file_lock.WithLock(local+".lock", fmt.Sprintf("fetch %s", crate), func() error {
		// the previous holder may have completed the download
		if _, err := os.Stat(local); err == nil {
			return nil
		}
		util.Logger.Infof("fetching crate %s %s ...", crate.Name, crate.Version)
		remote := fmt.Sprintf("%s/%s/%s-%s.crate", h.cratesBaseUrl, crate.Name, crate.Name, crate.Version)
		ch := context_hdl.New()
		defer ch.CancelAll()
		body, err := h.dlClient.Get(ch.Add(context.WithTimeout(ctx, h.httpTimeout)), remote)
		if err != nil {
			return err
		}
		defer body.Close()
		if err = writeCacheFile(local, body); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return model.NewInternalError(fmt.Errorf("unable to download %s: %s", crate, err))
	}
	return nil
}

// writeCacheFile streams the body to the final cache path. The file is
// removed on any error so an existing cache file always means a completed
// download.
func writeCacheFile(local string, body io.Reader) (err error) {
	file, err := os.Create(local)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := file.Close(); cErr != nil && err == nil {
			err = cErr
		}
		if err != nil {
			os.Remove(local)
		}
	}()
	_, err = io.Copy(file, body)
	return err
}

func (h *Handler) purgeRegistry(crate model.Crate) error {
	local := h.cachePath(crate)
	err := file_lock.WithLock(local+".lock", fmt.Sprintf("purge %s", crate), func() error {
		if _, err := os.Stat(local); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		return os.Remove(local)
	})
	if err != nil {
		return model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) copyRegistry(crate model.Crate, dstPath string) error {
	file, err := os.Open(h.cachePath(crate))
	if err != nil {
		return model.NewInternalError(err)
	}
	defer file.Close()
	util.Logger.Infof("extracting crate %s %s into %s", crate.Name, crate.Version, dstPath)
	if err = archive.ExtractCrate(file, dstPath); err != nil {
		return model.NewInternalError(fmt.Errorf("unable to unpack %s version %s: %s", crate.Name, crate.Version, err))
	}
	return nil
}
