// Package backend owns connectivity to the dataloader gRPC service.
package backend

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/herrhippopotamus/tradegate/internal/dataloader"
)

// Provider yields a backend client per facade call. Implementations are
// free to pool or multiplex connections; the default Dialer opens a fresh
// connection every time and the returned closer tears it down.
type Provider interface {
	Connect(ctx context.Context) (dataloader.DataLoaderClient, io.Closer, error)
}

// Dialer is the default Provider: one new insecure gRPC connection per
// call, no reuse across facade operations.
type Dialer struct {
	addr string
}

// NewDialer builds a Dialer for the given backend host and port.
func NewDialer(host string, port int) *Dialer {
	return &Dialer{addr: fmt.Sprintf("%s:%d", host, port)}
}

// Addr returns the target address the dialer connects to.
func (d *Dialer) Addr() string {
	return d.addr
}

// Connect opens a new connection and wraps it in a generated client.
// Dialing is lazy; transport failures surface on the first RPC.
func (d *Dialer) Connect(ctx context.Context) (dataloader.DataLoaderClient, io.Closer, error) {
	conn, err := grpc.NewClient(d.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", d.addr, err)
	}
	return dataloader.NewDataLoaderClient(conn), conn, nil
}

// Ping reports whether the backend is reachable. Used by the readiness
// probe; it drives the connection to READY or fails when ctx expires.
func (d *Dialer) Ping(ctx context.Context) error {
	conn, err := grpc.NewClient(d.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", d.addr, err)
	}
	defer func() { _ = conn.Close() }()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("backend %s not ready: %w", d.addr, ctx.Err())
		}
	}
}
