//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/hello-packages/pkg/pyhello"
	"github.com/jsamuelsen/hello-packages/pkg/pystatmath"
)

// TestConcurrent_Greetings verifies that greetings stay fixed under
// concurrent requests against the full HTTP stack.
func TestConcurrent_Greetings(t *testing.T) {
	server, err := newInProcessServer(false)
	require.NoError(t, err)
	defer server.Close()

	want := map[string]string{
		"pyhello":    "Hello, Python!",
		"pystatmath": "Hello, statmath!",
	}

	const numGoroutines = 50

	var wg sync.WaitGroup
	var mismatches int32

	for i := range numGoroutines {
		name := "pyhello"
		if i%2 == 1 {
			name = "pystatmath"
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Get(server.URL + "/api/v1/greetings/" + name)
			if err != nil {
				atomic.AddInt32(&mismatches, 1)
				return
			}
			defer resp.Body.Close()

			var body struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message != want[name] {
				atomic.AddInt32(&mismatches, 1)
			}
		}()
	}

	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&mismatches))

	resp, err := http.Get(server.URL + "/-/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), fmt.Sprintf(`hello_greetings_total{package="pyhello"} %d`, numGoroutines/2))
	assert.Contains(t, string(metrics), fmt.Sprintf(`hello_greetings_total{package="pystatmath"} %d`, numGoroutines/2))
}

// TestConcurrent_SharedGreeters calls the same greeter values from many
// goroutines.
func TestConcurrent_SharedGreeters(t *testing.T) {
	hello := pyhello.New()
	statmath := pystatmath.New()

	const numGoroutines = 100

	var wg sync.WaitGroup
	var mismatches int32

	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if hello.SayHello() != "Hello, Python!" || statmath.SayHello() != "Hello, statmath!" {
				atomic.AddInt32(&mismatches, 1)
			}
		}()
	}

	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&mismatches))
}

// TestConcurrent_Readiness runs strict readiness checks in parallel while
// CI_JOB_ID is set.
func TestConcurrent_Readiness(t *testing.T) {
	t.Setenv("CI_JOB_ID", "42")

	server, err := newInProcessServer(true)
	require.NoError(t, err)
	defer server.Close()

	const numGoroutines = 20

	var wg sync.WaitGroup
	var notReady int32

	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Get(server.URL + "/-/ready")
			if err != nil {
				atomic.AddInt32(&notReady, 1)
				return
			}
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				atomic.AddInt32(&notReady, 1)
			}
		}()
	}

	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&notReady))
}
