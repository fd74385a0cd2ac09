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

package job_hdl

import (
	"context"
	"errors"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	"testing"
	"time"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ccHandler := ccjh.New(10)
	if err := ccHandler.RunAsync(2, time.Millisecond*10); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ccHandler.Stop)
	ctx, cf := context.WithCancel(context.Background())
	t.Cleanup(cf)
	return New(ctx, ccHandler)
}

func waitForJob(t *testing.T, h *Handler, id string) model.Job {
	t.Helper()
	deadline := time.Now().Add(time.Second * 5)
	for time.Now().Before(deadline) {
		j, err := h.Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if j.Completed != nil {
			return j
		}
		time.Sleep(time.Millisecond * 10)
	}
	t.Fatal("job did not complete")
	return model.Job{}
}

func TestHandler_Create(t *testing.T) {
	h := newTestHandler(t)
	id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty job id")
	}
	j := waitForJob(t, h, id)
	if j.Error != nil {
		t.Errorf("unexpected job error: %v", j.Error)
	}
	if j.Started == nil {
		t.Error("job should have a start time")
	}
	if j.Description != "test job" {
		t.Errorf("expected: %s, got: %s", "test job", j.Description)
	}
}

func TestHandler_Create_jobError(t *testing.T) {
	h := newTestHandler(t)
	id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		return errors.New("test error")
	})
	if err != nil {
		t.Fatal(err)
	}
	j := waitForJob(t, h, id)
	if j.Error != "test error" {
		t.Errorf("expected: %s, got: %v", "test error", j.Error)
	}
}

func TestHandler_Get_notFound(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.Get("unknown")
	var nfe *model.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("expected not found error, got: %v", err)
	}
	if err = h.Cancel("unknown"); !errors.As(err, &nfe) {
		t.Errorf("expected not found error, got: %v", err)
	}
}

func TestHandler_Cancel(t *testing.T) {
	h := newTestHandler(t)
	started := make(chan struct{})
	id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	if err != nil {
		t.Fatal(err)
	}
	<-started
	if err = h.Cancel(id); err != nil {
		t.Fatal(err)
	}
	j := waitForJob(t, h, id)
	if j.Canceled == nil {
		t.Error("job should have a cancel time")
	}
	if j.Error == nil {
		t.Error("canceled job should carry an error")
	}
}

func TestHandler_List(t *testing.T) {
	h := newTestHandler(t)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
			defer cf()
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		waitForJob(t, h, id)
	}
	jobs := h.List(model.JobFilter{})
	if len(jobs) != 3 {
		t.Errorf("expected: %d, got: %d", 3, len(jobs))
	}
	jobs = h.List(model.JobFilter{Status: model.JobCompleted})
	if len(jobs) != 3 {
		t.Errorf("expected: %d, got: %d", 3, len(jobs))
	}
	jobs = h.List(model.JobFilter{Until: time.Now().UTC().Add(-time.Hour)})
	if len(jobs) != 0 {
		t.Errorf("expected: %d, got: %d", 0, len(jobs))
	}
	desc := h.List(model.JobFilter{SortDesc: true})
	if len(desc) == 3 && desc[0].Created.Before(desc[2].Created) {
		t.Error("jobs not sorted descending")
	}
}

func TestHandler_PurgeJobs(t *testing.T) {
	h := newTestHandler(t)
	id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	waitForJob(t, h, id)
	if n := h.PurgeJobs(time.Hour.Microseconds()); n != 0 {
		t.Errorf("expected: %d, got: %d", 0, n)
	}
	if n := h.PurgeJobs(0); n != 1 {
		t.Errorf("expected: %d, got: %d", 1, n)
	}
	if _, err = h.Get(id); err == nil {
		t.Error("expected error")
	}
}
