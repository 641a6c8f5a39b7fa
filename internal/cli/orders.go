package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

var (
	orderDescription string
	orderAddress     string
	orderServiceID   string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage service orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		orders, err := api.MyOrders(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPROFESSIONAL\tSTATUS\tPRICE\tDESCRIPTION")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
				o.ID, o.ProfessionalID, o.Status, o.Price, o.Description)
		}
		return w.Flush()
	},
}

var hireCmd = &cobra.Command{
	Use:   "hire <professional-id>",
	Short: "Open a service order with a professional",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		order, err := api.CreateOrder(cmd.Context(), domain.OrderInput{
			ProfessionalID: args[0],
			ServiceID:      orderServiceID,
			Description:    orderDescription,
			Address:        orderAddress,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Order %s created (%s)\n", order.ID, order.Status)
		return nil
	},
}

func orderActionCmd(use, short string, action func(*cobra.Command, string) (*domain.ServiceOrder, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			order, err := action(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}
}

var chatCmd = &cobra.Command{
	Use:   "chat <order-id> [message]",
	Short: "Read or append to an order's chat",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if len(args) == 2 {
			if _, err := api.SendMessage(cmd.Context(), args[0], domain.MessageInput{Content: args[1]}); err != nil {
				return err
			}
		}
		messages, err := api.ListMessages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, m := range messages {
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("15:04"), m.Sender, m.Content)
		}
		return nil
	},
}

func init() {
	hireCmd.Flags().StringVarP(&orderDescription, "description", "d", "", "what needs doing")
	hireCmd.Flags().StringVar(&orderAddress, "address", "", "where the work happens")
	hireCmd.Flags().StringVar(&orderServiceID, "service", "", "priced service to book")

	ordersCmd.AddCommand(
		orderActionCmd("confirm", "Confirm a pending order", func(cmd *cobra.Command, id string) (*domain.ServiceOrder, error) {
			return api.ConfirmOrder(cmd.Context(), id)
		}),
		orderActionCmd("complete", "Mark a confirmed order completed", func(cmd *cobra.Command, id string) (*domain.ServiceOrder, error) {
			return api.CompleteOrder(cmd.Context(), id)
		}),
		orderActionCmd("cancel", "Cancel an order", func(cmd *cobra.Command, id string) (*domain.ServiceOrder, error) {
			return api.CancelOrder(cmd.Context(), id)
		}),
	)

	rootCmd.AddCommand(ordersCmd, hireCmd, chatCmd)
}
