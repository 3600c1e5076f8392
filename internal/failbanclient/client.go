package failbanclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	failbanv1 "github.com/Alexandr-Snisarenko/subnet-failban/api/proto/failban/v1"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

type Client struct {
	conn   *grpc.ClientConn
	client failbanv1.FailbanClient
}

// New создает gRPC-клиент сервиса failban.
//
// address задаётся как "host:port", например "localhost:50051". Без опций соединение без TLS.
func New(address string, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failbanclient: dial %s: %w", address, err)
	}

	return &Client{
		conn:   conn,
		client: failbanv1.NewFailbanClient(conn),
	}, nil
}

// Close закрывает gRPC-соединение.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Check сообщает, заблокирована ли подсеть адреса.
func (c *Client) Check(ctx context.Context, ip string) (bool, error) {
	resp, err := c.client.Check(ctx, &failbanv1.CheckRequest{Ip: ip})
	if err != nil {
		return false, err
	}
	return resp.GetBlocked(), nil
}

// ReportFailure сообщает о неудачной попытке входа с адреса.
func (c *Client) ReportFailure(ctx context.Context, ip string) (bool, error) {
	resp, err := c.client.ReportFailure(ctx, &failbanv1.ReportFailureRequest{Ip: ip})
	if err != nil {
		return false, err
	}
	return resp.GetBanned(), nil
}

func (c *Client) ListBans(ctx context.Context) ([]domain.Ban, error) {
	resp, err := c.client.ListBans(ctx, &failbanv1.ListBansRequest{})
	if err != nil {
		return nil, err
	}
	bans := make([]domain.Ban, 0, len(resp.GetBans()))
	for _, b := range resp.GetBans() {
		bans = append(bans, domain.Ban{Subnet: domain.Subnet(b.GetSubnet()), ExpiresAt: time.Unix(b.GetExpiresAt(), 0)})
	}
	return bans, nil
}

func (c *Client) Unban(ctx context.Context, subnet string) error {
	_, err := c.client.Unban(ctx, &failbanv1.UnbanRequest{Subnet: subnet})
	return err
}

func (c *Client) AddTrusted(ctx context.Context, cidr string) error {
	_, err := c.client.AddTrusted(ctx, &failbanv1.ManageCIDRRequest{Cidr: cidr})
	return err
}

func (c *Client) RemoveTrusted(ctx context.Context, cidr string) error {
	_, err := c.client.RemoveTrusted(ctx, &failbanv1.ManageCIDRRequest{Cidr: cidr})
	return err
}

func (c *Client) ListTrusted(ctx context.Context) ([]string, error) {
	resp, err := c.client.ListTrusted(ctx, &failbanv1.ListTrustedRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetCidrs(), nil
}

// ClearTrusted очищает список доверенных подсетей.
func (c *Client) ClearTrusted(ctx context.Context) error {
	_, err := c.client.ClearTrusted(ctx, &failbanv1.ClearTrustedRequest{})
	return err
}
