package shell

import (
	"fmt"
	"testing"

	"github.com/josephlewis42/minish/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleSplitSearchPath() {
	fmt.Printf("%q\n", SplitSearchPath("/bin:/usr/bin"))
	fmt.Printf("%q\n", SplitSearchPath("/bin::/usr/bin"))
	fmt.Printf("%q\n", SplitSearchPath(""))

	// Output: ["/bin" "/usr/bin"]
	// ["/bin" "" "/usr/bin"]
	// []
}

func TestResolver_Resolve(t *testing.T) {
	testOS := vostest.NewTestOS(nil, nil, nil)
	testOS.MustWriteExecutable(t, "/bin/xecho")
	testOS.MustWriteExecutable(t, "/bin/ls")
	testOS.MustWriteExecutable(t, "/usr/bin/echo")
	testOS.MustWriteExecutable(t, "/usr/bin/ls")
	testOS.MustWriteExecutable(t, "/usr/local/bin/tool")
	testOS.MustMkdirAll(t, "/usr/bin/subdir")

	cases := map[string]struct {
		searchPath []string
		name       string
		want       string
	}{
		"exact match not suffix": {
			searchPath: []string{"/bin", "/usr/bin"},
			name:       "echo",
			want:       "/usr/bin/echo",
		},
		"first match wins": {
			searchPath: []string{"/bin", "/usr/bin"},
			name:       "ls",
			want:       "/bin/ls",
		},
		"order matters": {
			searchPath: []string{"/usr/bin", "/bin"},
			name:       "ls",
			want:       "/usr/bin/ls",
		},
		"missing directories skipped": {
			searchPath: []string{"/nope", "/bin/xecho", "", "/usr/local/bin"},
			name:       "tool",
			want:       "/usr/local/bin/tool",
		},
		"trailing slash": {
			searchPath: []string{"/usr/local/bin/"},
			name:       "tool",
			want:       "/usr/local/bin/tool",
		},
		"root": {
			searchPath: []string{"/"},
			name:       "bin",
			want:       "/bin",
		},
		"entries of any type": {
			searchPath: []string{"/usr/bin"},
			name:       "subdir",
			want:       "/usr/bin/subdir",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			resolver := NewResolver(testOS, tc.searchPath)

			got, err := resolver.Resolve(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolver_Resolve_notFound(t *testing.T) {
	testOS := vostest.NewTestOS(nil, nil, nil)
	testOS.MustWriteExecutable(t, "/bin/xecho")

	cases := map[string][]string{
		"suffix only":       {"/bin"},
		"empty search path": nil,
		"only empty entry":  {""},
		"unlistable":        {"/missing"},
	}

	for tn, searchPath := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := NewResolver(testOS, searchPath).Resolve("echo")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), "echo")
		})
	}
}

func TestResolver_SearchPath(t *testing.T) {
	searchPath := []string{"/bin", "/usr/bin"}
	resolver := NewResolver(vostest.NewTestOS(nil, nil, nil), searchPath)

	searchPath[0] = "/changed"
	got := resolver.SearchPath()
	assert.Equal(t, []string{"/bin", "/usr/bin"}, got)

	got[1] = "/changed"
	assert.Equal(t, []string{"/bin", "/usr/bin"}, resolver.SearchPath())
}
