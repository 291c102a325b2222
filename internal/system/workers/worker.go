/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package workers provides a background task pool for deferred work such as
// persisting resolved profiles after the response is written.
package workers

import (
	"sync"

	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

// Task is a unit of deferred work.
type Task func()

// Pool runs submitted tasks on a fixed set of background goroutines.
type Pool struct {
	name  string
	tasks chan Task
	wg    sync.WaitGroup
	once  sync.Once
}

// StartPool launches a named worker pool with the given worker count and
// queue size.
func StartPool(name string, workerCount, queueSize int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool{
		name:  name,
		tasks: make(chan Task, queueSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	log.GetLogger().Debug("Started worker pool",
		log.String("pool", name), log.Int("workers", workerCount))
	return p
}

// Submit queues a task for execution. Returns false when the queue is full,
// in which case the task is dropped and logged.
func (p *Pool) Submit(task Task) bool {
	select {
	case p.tasks <- task:
		return true
	default:
		log.GetLogger().Warn("Worker pool queue full, dropping task", log.String("pool", p.name))
		return false
	}
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
