package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/failbanclient"
)

// failbanAPI — методы клиента, которыми пользуются команды.
type failbanAPI interface {
	Check(ctx context.Context, ip string) (bool, error)
	ReportFailure(ctx context.Context, ip string) (bool, error)
	ListBans(ctx context.Context) ([]domain.Ban, error)
	Unban(ctx context.Context, subnet string) error
	AddTrusted(ctx context.Context, cidr string) error
	RemoveTrusted(ctx context.Context, cidr string) error
	ListTrusted(ctx context.Context) ([]string, error)
	ClearTrusted(ctx context.Context) error
	Close() error
}

type ctxKey string

const clientKey ctxKey = "failbanclient"

func newRootCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
		cancel  context.CancelFunc
	)

	root := &cobra.Command{
		Use:   "failbanctl",
		Short: "subnet-failban admin CLI",
		Example: `	failbanctl --addr 127.0.0.1:50051 check --ip 203.0.113.7
	failbanctl bans list
	failbanctl bans unban --subnet 203.0.113.0/24
	failbanctl trusted add --cidr 192.168.1.0/24
	failbanctl trusted clear --yes`,
		SilenceUsage: true,
		// Создаём клиента и кладём его в context перед выполнением любой команды.
		// Если клиент уже лежит в context (тесты), новый не создаём.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, c := context.WithTimeout(cmd.Context(), timeout)
			cancel = c
			if _, ok := ctx.Value(clientKey).(failbanAPI); !ok {
				fc, err := failbanclient.New(addr)
				if err != nil {
					return err
				}
				ctx = context.WithValue(ctx, clientKey, failbanAPI(fc))
			}
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if cancel != nil {
				defer cancel()
			}
			if c := getClient(cmd); c != nil {
				return c.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&addr, "addr", getenv("FAILBAN_ADDR", "127.0.0.1:50051"), "gRPC address (or FAILBAN_ADDR)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newFailCmd())
	root.AddCommand(newBansCmd())
	root.AddCommand(newTrustedCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func getClient(cmd *cobra.Command) failbanAPI {
	c, _ := cmd.Context().Value(clientKey).(failbanAPI)
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
