package pyhello

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/hello-packages/internal/packaging"
)

func TestHelloPython_SayHello(t *testing.T) {
	hs := New()
	assert.Equal(t, "Hello, Python!", hs.SayHello())
}

func TestHelloPython_ZeroValue(t *testing.T) {
	var hs HelloPython
	assert.Equal(t, Greeting, hs.SayHello())
}

func TestHelloPython_Idempotent(t *testing.T) {
	hs := New()
	first := hs.SayHello()

	for range 100 {
		assert.Equal(t, first, hs.SayHello())
	}
}

func TestHelloPython_MutatingCopyDoesNotLeak(t *testing.T) {
	hs := New()

	b := []byte(hs.SayHello())
	for i := range b {
		b[i] = 'x'
	}

	assert.Equal(t, "Hello, Python!", hs.SayHello())
}

func TestHelloPython_Concurrent(t *testing.T) {
	hs := New()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, Greeting, hs.SayHello())
		}()
	}
	wg.Wait()
}

func TestPackage(t *testing.T) {
	decl := Package()

	assert.Equal(t, "pyhello", decl.Name)
	assert.Equal(t, "CI_JOB_ID", decl.VersionEnv)
	assert.Equal(t, []string{"numpy"}, decl.Requires)

	lookup := func(key string) (string, bool) {
		if key == VersionEnv {
			return "1234", true
		}
		return "", false
	}

	desc, err := packaging.Build(decl, packaging.WithLookupEnv(lookup))
	require.NoError(t, err)
	assert.Equal(t, "1234", desc.Version)
	assert.Contains(t, desc.LongDescription, "# pyhello")
	assert.Equal(t, packaging.ContentTypeMarkdown, desc.LongDescriptionContentType)
}

func TestPackage_VersionRequiresEnvironment(t *testing.T) {
	_, err := packaging.Build(Package(), packaging.WithLookupEnv(func(string) (string, bool) { return "", false }))
	assert.ErrorIs(t, err, packaging.ErrVersionUnset)
}
