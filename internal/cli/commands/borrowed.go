package commands

import (
	"context"
	"fmt"
	"strings"

	"ClubStock/internal/cli/api"
	"ClubStock/internal/config"
	"ClubStock/internal/model"
)

type borrowedCmd struct{}

func (borrowedCmd) Name() string { return "borrowed" }
func (borrowedCmd) Description() string {
	return "Показать журнал выдачи (--status borrowed|returned — фильтр)"
}
func (borrowedCmd) Usage() string { return "borrowed [--status <status>]" }

func (borrowedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	url := cfg.ServerURL + "/api/borrowed"
	switch len(args) {
	case 0:
	case 2:
		if args[0] != "--status" || strings.TrimSpace(args[1]) == "" {
			return ErrUsage
		}
		url += "?status=" + args[1]
	default:
		return ErrUsage
	}

	var items []model.BorrowedItem
	if err := api.GetJSON(url, &items); err != nil {
		return err
	}

	fmt.Fprintf(Out, "%-36s %-28s %8s %-8s %-12s %-20s\n", "ID", "ITEM", "QTY", "UNIT", "STATUS", "BORROWED AT")
	for _, b := range items {
		fmt.Fprintf(Out, "%-36s %-28s %8g %-8s %-12s %-20s\n",
			b.ID, b.Item, b.Quantity, b.Unit, b.Status, b.BorrowedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(Out, "Всего записей: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(borrowedCmd{}) }
