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

package handler

import (
	"context"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"io"
)

type CrateHandler interface {
	Fetch(ctx context.Context, crate model.Crate) error
	Purge(ctx context.Context, crate model.Crate) error
	CopySourceTo(ctx context.Context, crate model.Crate, dstPath string) error
	GitCommit(ctx context.Context, crate model.Crate) string
}

// Tool is an externally managed executable the build workspace depends on.
// IsInstalled must stay a cheap stat level check and never invoke the tool.
type Tool interface {
	Name() string
	BinaryPath() string
	IsInstalled() (bool, error)
	Install(ctx context.Context) error
	Update(ctx context.Context) error
}

type ToolHandler interface {
	List() []model.ToolInfo
	InstallAll(ctx context.Context) error
}

type JobHandler interface {
	Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error)
	Get(id string) (model.Job, error)
	List(filter model.JobFilter) []model.Job
	Cancel(id string) error
	PurgeJobs(maxAge int64) int
}

// DownloadClient is the transport capability, a plain GET returning the body
// stream. Non 2xx statuses surface as errors.
type DownloadClient interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}

type CmdExecutor interface {
	Run(ctx context.Context, name string, args []string, env map[string]string) error
}
