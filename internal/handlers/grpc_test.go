package handlers

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newFrameStreamClient(t *testing.T, sm *SessionManager) *FrameStreamClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterFrameStreamServer(srv, NewFrameStreamServer(sm))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewFrameStreamClient(conn)
}

func TestFrameStreamDeliversFrames(t *testing.T) {
	sm := newTestSessions(t, time.Hour)
	client := newFrameStreamClient(t, sm)

	state, err := sm.CreateSession("1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Stream(ctx, &StreamRequest{SessionID: state.ID.String()})
	require.NoError(t, err)

	frame, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "1", frame.CaseID)
	assert.Equal(t, 0.0, frame.Window.Start)

	require.Eventually(t, func() bool {
		return sm.Hub().SubscriberCount(state.ID) == 1
	}, time.Second, time.Millisecond)

	_, err = sm.Seek(state.ID, 900)
	require.NoError(t, err)
	frame, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, 900.0, frame.Window.Start)
	assert.Len(t, frame.Vitals["HR"], 61)

	// удаление сессии завершает поток
	require.NoError(t, sm.DeleteSession(state.ID))
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFrameStreamSkipCurrent(t *testing.T) {
	sm := newTestSessions(t, time.Hour)
	client := newFrameStreamClient(t, sm)

	state, err := sm.CreateSession("2")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Stream(ctx, &StreamRequest{SessionID: state.ID.String(), SkipCurrent: true})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sm.Hub().SubscriberCount(state.ID) == 1
	}, 2*time.Second, time.Millisecond)

	_, err = sm.SelectCase(state.ID, "1")
	require.NoError(t, err)

	frame, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "1", frame.CaseID)
}

func TestFrameStreamErrors(t *testing.T) {
	sm := newTestSessions(t, time.Hour)
	client := newFrameStreamClient(t, sm)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := []struct {
		name string
		id   string
		code codes.Code
	}{
		{"bad id", "nope", codes.InvalidArgument},
		{"unknown session", uuid.NewString(), codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := client.Stream(ctx, &StreamRequest{SessionID: tt.id})
			require.NoError(t, err)
			_, err = stream.Recv()
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}
