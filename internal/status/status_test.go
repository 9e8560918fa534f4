package status_test

import (
	"testing"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/generator"
	"github.com/reachlab/spatialgraph/internal/status"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/pathfinder"
	"github.com/stretchr/testify/require"
)

func TestFrom_NilIsOK(t *testing.T) {
	require.Equal(t, status.OK, status.From(nil))
}

func TestFrom_KnownSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want status.Code
	}{
		{mesh.ErrInvalidMesh, status.InvalidMesh},
		{generator.ErrNoGround, status.NoGraph},
		{pathfinder.ErrNoPath, status.NoPath},
		{spatialgraph.ErrOutOfRange, status.OutOfRange},
		{spatialgraph.ErrNoSuchEdge, status.NotFound},
		{spatialgraph.ErrUncompressed, status.NoGraph},
	}
	for _, c := range cases {
		require.Equal(t, c.want, status.From(c.err))
	}
}

func TestFrom_UnknownErrorIsGeneric(t *testing.T) {
	require.Equal(t, status.GenericError, status.From(errUnknown("boom")))
}

type errUnknown string

func (e errUnknown) Error() string { return string(e) }

func TestCode_String(t *testing.T) {
	require.Equal(t, "OK", status.OK.String())
	require.Equal(t, "NO_PATH", status.NoPath.String())
}
