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
	"errors"
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/crate-source-manager/util/context_hdl"
	"github.com/SENERGY-Platform/crate-source-manager/util/dir_fs"
	"github.com/SENERGY-Platform/crate-source-manager/util/file_lock"
	"github.com/go-git/go-git/v5"
	"github.com/google/uuid"
	"os"
	"path"
)

func (h *Handler) repoDirPath(crate model.Crate) string {
	return path.Join(h.cacheDirPath, gitReposDir, uuid.NewSHA1(uuid.NameSpaceURL, []byte(crate.URL)).String())
}

func (h *Handler) fetchGit(ctx context.Context, crate model.Crate) error {
	repoDir := h.repoDirPath(crate)
	err := file_lock.WithLock(repoDir+".lock", fmt.Sprintf("fetch %s", crate), func() error {
		ch := context_hdl.New()
		defer ch.CancelAll()
		ctxWt := ch.Add(context.WithTimeout(ctx, h.httpTimeout))
		repo, err := git.PlainOpen(repoDir)
		if err != nil {
			if !errors.Is(err, git.ErrRepositoryNotExists) {
				return err
			}
			util.Logger.Infof("cloning %s into %s", crate.URL, repoDir)
			_, err = git.PlainCloneContext(ctxWt, repoDir, false, &git.CloneOptions{
				URL:               crate.URL,
				RecurseSubmodules: git.NoRecurseSubmodules,
			})
			if err != nil {
				os.RemoveAll(repoDir)
			}
			return err
		}
		util.Logger.Infof("updating cached clone of %s", crate.URL)
		worktree, err := repo.Worktree()
		if err != nil {
			return err
		}
		err = worktree.PullContext(ctxWt, &git.PullOptions{RemoteName: "origin", Force: true})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return err
		}
		return nil
	})
	if err != nil {
		return model.NewInternalError(fmt.Errorf("unable to update %s: %s", crate, err))
	}
	return nil
}

func (h *Handler) purgeGit(crate model.Crate) error {
	repoDir := h.repoDirPath(crate)
	err := file_lock.WithLock(repoDir+".lock", fmt.Sprintf("purge %s", crate), func() error {
		return os.RemoveAll(repoDir)
	})
	if err != nil {
		return model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) copyGit(crate model.Crate, dstPath string) error {
	repoDir := h.repoDirPath(crate)
	src, err := dir_fs.New(repoDir)
	if err != nil {
		return model.NewInternalError(err)
	}
	util.Logger.Infof("copying cached clone of %s to %s", crate.URL, dstPath)
	if err = dir_fs.Copy(src, dstPath, dir_fs.CopyOptions{SkipRootDirs: []string{".git"}}); err != nil {
		return model.NewInternalError(fmt.Errorf("unable to copy %s: %s", crate, err))
	}
	return nil
}

// GitCommit returns the commit hash of the cached clone's HEAD. Crates that
// are not git based or clones in a broken state yield an empty string.
func (h *Handler) GitCommit(_ context.Context, crate model.Crate) string {
	if crate.Type != model.CrateTypeGit {
		return ""
	}
	repo, err := git.PlainOpen(h.repoDirPath(crate))
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}
