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

package workers

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-profile-resolution-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestPoolRunsSubmittedTasks(t *testing.T) {
	pool := StartPool("test", 2, 16)

	var counter int64
	for i := 0; i < 10; i++ {
		assert.True(t, pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		}))
	}

	pool.Stop()
	assert.Equal(t, int64(10), atomic.LoadInt64(&counter))
}

func TestPoolDropsTasksWhenQueueIsFull(t *testing.T) {
	pool := StartPool("test", 1, 1)
	release := make(chan struct{})

	// Occupy the single worker so the queue backs up.
	pool.Submit(func() { <-release })

	accepted := 0
	for i := 0; i < 10; i++ {
		if pool.Submit(func() {}) {
			accepted++
		}
	}
	assert.Less(t, accepted, 10)

	close(release)
	pool.Stop()
}
