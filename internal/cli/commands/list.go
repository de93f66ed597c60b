package commands

import (
	"context"
	"fmt"

	"ClubStock/internal/cli/api"
	"ClubStock/internal/config"
	"ClubStock/internal/model"
)

type listCmd struct{}

func (listCmd) Name() string { return "list" }
func (listCmd) Description() string {
	return "Показать инвентарь (--remaining — только позиции в наличии)"
}
func (listCmd) Usage() string { return "list [--remaining]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	url := cfg.ServerURL + "/api/inventory"
	switch len(args) {
	case 0:
	case 1:
		if args[0] != "--remaining" {
			return ErrUsage
		}
		url += "?only_remaining=1"
	default:
		return ErrUsage
	}

	var items []model.InventoryItem
	if err := api.GetJSON(url, &items); err != nil {
		return err
	}

	fmt.Fprintf(Out, "%-36s %-10s %-28s %10s %10s %-8s\n", "ID", "TYPE", "ITEM", "CURRENT", "TOTAL", "UNIT")
	for _, it := range items {
		fmt.Fprintf(Out, "%-36s %-10s %-28s %10g %10g %-8s\n",
			it.ID, it.Type, it.Item, it.CurrentQty, it.TotalQty, it.Unit)
	}
	fmt.Fprintf(Out, "Всего позиций: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
