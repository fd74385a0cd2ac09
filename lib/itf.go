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

package lib

import (
	"context"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
)

type Api interface {
	PrepareCrate(ctx context.Context, req model.CratePrepareRequest) (string, error)
	FetchCrate(ctx context.Context, crate model.Crate) (string, error)
	PurgeCrate(ctx context.Context, crate model.Crate) (string, error)
	GetCrateCommit(ctx context.Context, crate model.Crate) (model.CrateCommit, error)
	GetTools(ctx context.Context) ([]model.ToolInfo, error)
	InstallTools(ctx context.Context) (string, error)
	GetJobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	CancelJob(ctx context.Context, id string) error
}
