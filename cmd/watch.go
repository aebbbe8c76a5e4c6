package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rhekacitra/InsideOR-Project/internal/handlers"
	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

func newWatchCommand() *cobra.Command {
	var (
		addr      string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Print live values of a viewer session from the gRPC frame stream",
		Example: `insideor watch --addr localhost:50051 --session 7b0c...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("gRPC dial error: %w", err)
			}
			defer conn.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stream, err := handlers.NewFrameStreamClient(conn).Stream(ctx, &handlers.StreamRequest{SessionID: sessionID})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for {
				frame, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					fmt.Fprintln(out, "stream closed")
					return nil
				}
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("recv error: %w", err)
				}
				fmt.Fprintln(out, formatFrameLine(frame))
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:50051", "gRPC server address")
	cmd.Flags().StringVar(&sessionID, "session", "", "viewer session id")
	if err := cmd.MarkFlagRequired("session"); err != nil {
		panic(err)
	}
	return cmd
}

// formatFrameLine одна строка вывода: время окна и текущие значения
func formatFrameLine(frame *models.Frame) string {
	parts := make([]string, 0, len(frame.LiveVitals)+len(frame.LiveInterventions))
	for _, lv := range append(frame.LiveVitals, frame.LiveInterventions...) {
		val := "--"
		if lv.Value != nil {
			val = fmt.Sprintf("%.2f", *lv.Value)
		}
		parts = append(parts, lv.Param+"="+val)
	}
	return fmt.Sprintf("[case %s] %s  %s", frame.CaseID, frame.TimeLabel, strings.Join(parts, "  "))
}
