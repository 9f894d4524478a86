// cmd/librarydemo/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"circulib/internal/catalog"
	"circulib/internal/circulation"
	"circulib/internal/membership"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("librarydemo: %v", err)
	}
}

// run wires the services, builds the sample roster and catalog, and writes
// the circulation report. The output format is a compatibility contract and
// is covered by a golden test.
func run(ctx context.Context, w io.Writer) error {
	members := membership.NewService()
	items := catalog.NewService()
	circ := circulation.NewService(members, items)

	if _, err := members.RegisterStudent(ctx, "S100", "Amina", "amina@uni.edu",
		decimal.NewFromInt(50),
		membership.StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.8")},
	); err != nil {
		return err
	}
	if _, err := members.RegisterStaff(ctx, "ST200", "Omar", "omar@uni.edu",
		decimal.NewFromInt(75),
		membership.StaffRole{CanApprovePurchases: true},
	); err != nil {
		return err
	}
	if _, err := members.RegisterTeachingAssistant(ctx, "TA300", "Lina", "lina@uni.edu",
		decimal.NewFromInt(60),
		membership.StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.85")},
		membership.StaffRole{CanApprovePurchases: true},
	); err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Users ===")
	if err := printUsers(ctx, w, members); err != nil {
		return err
	}

	deposits := []struct {
		id     string
		amount decimal.Decimal
	}{
		{"S100", decimal.NewFromInt(20)},
		{"ST200", decimal.NewFromInt(10)},
		{"TA300", decimal.NewFromInt(5)},
	}
	for _, d := range deposits {
		if err := members.AddFunds(ctx, d.id, d.amount); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\n=== Users After Adding Funds ===")
	if err := printUsers(ctx, w, members); err != nil {
		return err
	}

	sample := []struct {
		id    string
		title string
		kind  catalog.Kind
	}{
		{"B001", "Effective C++", catalog.KindBook},
		{"M010", "Tech Monthly", catalog.KindMagazine},
		{"D100", "C++ Patterns", catalog.KindDVD},
	}
	for _, it := range sample {
		if _, err := items.AddItem(ctx, it.id, it.title, it.kind); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\n=== Library Items ===")
	cataloged, err := items.ListItems(ctx)
	if err != nil {
		return err
	}
	for _, item := range cataloged {
		fmt.Fprintf(w, "%s | %s | %s | fee/day: %s\n",
			item.ID(), item.Title(), item.TypeName(), item.LateFeePerDay().String())
	}

	// Student Amina returns the book 5 days late.
	tx, err := circ.OpenTransaction(ctx, "S100", "B001", 5)
	if err != nil {
		return err
	}
	fee, err := circ.Process(ctx, tx.ID())
	if err != nil {
		return err
	}

	borrower, err := members.GetUser(ctx, tx.UserID())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Transaction Summary ===")
	fmt.Fprintf(w, "User: %s | Item: %s\n", tx.UserID(), tx.ItemID())
	fmt.Fprintf(w, "Days late: %d | Fee charged: %s\n", tx.DaysLate(), fee.StringFixed(2))
	fmt.Fprintf(w, "Remaining balance: %s\n", borrower.Balance().StringFixed(2))
	fmt.Fprintf(w, "Transaction open: %s\n", openLabel(tx.IsOpen()))

	return nil
}

func printUsers(ctx context.Context, w io.Writer, members membership.Service) error {
	users, err := members.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprint(w, u.Describe())
	}
	return nil
}

func openLabel(open bool) string {
	if open {
		return "Yes"
	}
	return "No"
}
