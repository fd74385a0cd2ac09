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

package main

import (
	"context"
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/api"
	"github.com/SENERGY-Platform/crate-source-manager/handler/crate_hdl"
	"github.com/SENERGY-Platform/crate-source-manager/handler/http_hdl"
	"github.com/SENERGY-Platform/crate-source-manager/handler/job_hdl"
	"github.com/SENERGY-Platform/crate-source-manager/handler/tool_hdl"
	lib_model "github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/crate-source-manager/util/cmd_exec"
	"github.com/SENERGY-Platform/crate-source-manager/util/http_dl"
	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/SENERGY-Platform/go-service-base/srv-base/types"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

var version string

func main() {
	srv_base.PrintInfo(lib_model.ServiceName, version)

	flags := util.NewFlags()

	config, err := util.NewConfig(flags.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := util.InitLogger(config.Logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	util.Logger.Debugf("config: %s", srv_base.ToJsonStr(config))

	dlClient := http_dl.New()
	httpTimeout := time.Duration(config.HttpClient.Timeout)

	crateHandler, err := crate_hdl.New(config.CrateHandler.CacheDirPath, config.HttpClient.CratesBaseUrl, dlClient, httpTimeout, 0755)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	if err = crateHandler.Init(); err != nil {
		util.Logger.Error(err)
		return
	}

	toolDefs, err := tool_hdl.LoadDefs(config.ToolHandler.DefsPath)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	tools, err := tool_hdl.NewTools(toolDefs, tool_hdl.ToolDeps{
		CargoHomePath:  config.ToolHandler.CargoHomePath,
		RustupHomePath: config.ToolHandler.RustupHomePath,
		Toolchain:      config.ToolHandler.Toolchain,
		Profile:        config.ToolHandler.RustupProfile,
		DistBaseUrl:    config.HttpClient.RustupDistBaseUrl,
		DlClient:       dlClient,
		HttpTimeout:    httpTimeout,
		Executor:       cmd_exec.New(),
	})
	if err != nil {
		util.Logger.Error(err)
		return
	}
	toolHandler, err := tool_hdl.New(tools, config.ToolHandler.CargoHomePath)
	if err != nil {
		util.Logger.Error(err)
		return
	}

	ccHandler := ccjh.New(config.Jobs.BufferSize)

	jobCtx, jobCf := context.WithCancel(context.Background())
	defer jobCf()
	jobHandler := job_hdl.New(jobCtx, ccHandler)

	if config.Jobs.PurgeInterval > 0 && config.Jobs.MaxAge > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(config.Jobs.PurgeInterval))
			defer ticker.Stop()
			for {
				select {
				case <-jobCtx.Done():
					return
				case <-ticker.C:
					if n := jobHandler.PurgeJobs(config.Jobs.MaxAge); n > 0 {
						util.Logger.Debugf("purged %d old jobs", n)
					}
				}
			}
		}()
	}

	err = ccHandler.RunAsync(config.Jobs.MaxNumber, time.Duration(config.Jobs.CCHInterval*1000))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	defer ccHandler.Stop()

	if config.ToolHandler.InstallOnStartup {
		if err = toolHandler.InstallAll(jobCtx); err != nil {
			util.Logger.Error(err)
			return
		}
	}

	mApi := api.New(crateHandler, toolHandler, jobHandler)

	httpHandler := http_hdl.New(mApi, map[string]string{
		lib_model.HeaderApiVer:  version,
		lib_model.HeaderSrvName: lib_model.ServiceName,
	})

	util.Logger.Debugf("routes: %s", srv_base.ToJsonStr(http_hdl.GetRoutes(httpHandler)))

	listener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	srv_base.StartServer(&http.Server{Handler: httpHandler}, listener, srv_base_types.DefaultShutdownSignals, util.Logger)
}
