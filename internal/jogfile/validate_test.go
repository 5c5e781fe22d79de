package jogfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAndValidate(t *testing.T, src string) error {
	t.Helper()
	tasks, err := Parse("jogfile", []byte(src))
	require.NoError(t, err)
	return Validate("jogfile", tasks)
}

func TestValidateRedundancy(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "same arity",
			src:     "greet name\n  echo 1\ngreet name\n  echo 2\n",
			wantErr: "jogfile:3: redundant definition for 'greet', already covered by jogfile:1",
		},
		{
			name:    "rest before fixed",
			src:     "greet ...\n  echo 1\ngreet name\n  echo 2\n",
			wantErr: "jogfile:3: redundant definition for 'greet', already covered by jogfile:1",
		},
		{
			name:    "rest before larger rest",
			src:     "greet a ...\ngreet a b ...\n",
			wantErr: "jogfile:2: redundant definition for 'greet', already covered by jogfile:1",
		},
		{
			name: "fixed before rest",
			src:  "greet name\n  echo 1\ngreet ...\n  echo 2\n",
		},
		{
			name: "rest after larger fixed",
			src:  "greet a b\ngreet a ...\n",
		},
		{
			name: "larger rest before smaller fixed",
			src:  "greet a b ...\ngreet a\n",
		},
		{
			name: "different arity",
			src:  "greet\ngreet a\ngreet a b\n",
		},
		{
			name: "different names",
			src:  "a x\nb x\n",
		},
		{
			name:    "non adjacent",
			src:     "t a\nother\nt b\n",
			wantErr: "jogfile:3: redundant definition for 't', already covered by jogfile:1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := parseAndValidate(t, tc.src)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}
