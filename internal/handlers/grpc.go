package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

// JSONCodecName подтип content-type для кодека кадров
const JSONCodecName = "json"

const frameStreamMethod = "/insideor.FrameStream/Stream"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec кодирует сообщения gRPC в JSON, кадры уже описаны json-тегами
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return JSONCodecName
}

// StreamRequest запрос потока кадров сессии
type StreamRequest struct {
	SessionID string `json:"session_id"`
	// SkipCurrent не отправлять текущий кадр при подключении
	SkipCurrent bool `json:"skip_current"`
}

// FrameStreamService серверная часть insideor.FrameStream
type FrameStreamService interface {
	Stream(req *StreamRequest, stream FrameStream_StreamServer) error
}

// FrameStream_StreamServer поток кадров на стороне сервера
type FrameStream_StreamServer interface {
	Send(*models.Frame) error
	grpc.ServerStream
}

type frameStreamStreamServer struct {
	grpc.ServerStream
}

func (x *frameStreamStreamServer) Send(m *models.Frame) error {
	return x.ServerStream.SendMsg(m)
}

func frameStreamHandler(srv interface{}, stream grpc.ServerStream) error {
	req := new(StreamRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(FrameStreamService).Stream(req, &frameStreamStreamServer{stream})
}

// FrameStreamServiceDesc описание сервиса для grpc.Server
var FrameStreamServiceDesc = grpc.ServiceDesc{
	ServiceName: "insideor.FrameStream",
	HandlerType: (*FrameStreamService)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stream",
			Handler:       frameStreamHandler,
			ServerStreams: true,
		},
	},
	Metadata: "insideor/frame_stream",
}

// RegisterFrameStreamServer регистрирует реализацию на сервере
func RegisterFrameStreamServer(s grpc.ServiceRegistrar, srv FrameStreamService) {
	s.RegisterService(&FrameStreamServiceDesc, srv)
}

// FrameStreamServer отдает кадры сессии просмотра по gRPC
type FrameStreamServer struct {
	sessions *SessionManager
}

// NewFrameStreamServer создание нового сервера
func NewFrameStreamServer(sessions *SessionManager) *FrameStreamServer {
	return &FrameStreamServer{sessions: sessions}
}

// Stream стриминг кадров до отключения клиента или удаления сессии
func (s *FrameStreamServer) Stream(req *StreamRequest, stream FrameStream_StreamServer) error {
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "неверный ID сессии: %v", err)
	}

	current, err := s.sessions.CurrentFrame(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return status.Error(codes.NotFound, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}

	clientID, frames, err := s.sessions.Subscribe(sessionID)
	if err != nil {
		return status.Error(codes.NotFound, err.Error())
	}
	defer s.sessions.Hub().Unsubscribe(sessionID, clientID)

	slog.Info("gRPC stream client connected", "session_id", sessionID.String(), "client_id", clientID.String())
	defer slog.Info("gRPC stream client disconnected", "session_id", sessionID.String(), "client_id", clientID.String())

	if !req.SkipCurrent {
		if err := stream.Send(&current); err != nil {
			return err
		}
	}

	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return nil
			}
			if err := stream.Send(&frame); err != nil {
				slog.Warn("Failed to send frame", "client_id", clientID.String(), "error", err)
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// FrameStreamClient клиент insideor.FrameStream
type FrameStreamClient struct {
	cc grpc.ClientConnInterface
}

// NewFrameStreamClient создает клиента поверх соединения
func NewFrameStreamClient(cc grpc.ClientConnInterface) *FrameStreamClient {
	return &FrameStreamClient{cc: cc}
}

// FrameStream_StreamClient поток кадров на стороне клиента
type FrameStream_StreamClient interface {
	Recv() (*models.Frame, error)
	grpc.ClientStream
}

type frameStreamStreamClient struct {
	grpc.ClientStream
}

func (x *frameStreamStreamClient) Recv() (*models.Frame, error) {
	m := new(models.Frame)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Stream открывает поток кадров сессии
func (c *FrameStreamClient) Stream(ctx context.Context, req *StreamRequest, opts ...grpc.CallOption) (FrameStream_StreamClient, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(JSONCodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &FrameStreamServiceDesc.Streams[0], frameStreamMethod, opts...)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия потока: %w", err)
	}
	x := &frameStreamStreamClient{stream}
	if err := x.ClientStream.SendMsg(req); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
