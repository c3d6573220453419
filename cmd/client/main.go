// Command client drives the order funnel from the command line: pick a
// vibe and tier, point it at a photo, and it submits the order to a
// running intake server.
package main

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"holiday-poster-funnel/internal/catalog"
	"holiday-poster-funnel/internal/funnel"
)

func main() {
	app := &cli.App{
		Name:  "poster-client",
		Usage: "submit a holiday movie poster order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:8080", Usage: "base URL of the intake server"},
			&cli.StringFlag{Name: "vibe", Required: true, Usage: "movie vibe: homeAlone, elf, or vacation"},
			&cli.StringFlag{Name: "tier", Value: string(catalog.TierDigital), Usage: "fulfillment tier: digital, print, or framed"},
			&cli.StringFlag{Name: "photo", Required: true, Usage: "path to the family photo"},
			&cli.StringFlag{Name: "name", Required: true, Usage: "full name"},
			&cli.StringFlag{Name: "email", Required: true, Usage: "email address"},
			&cli.StringFlag{Name: "phone", Usage: "phone number"},
			&cli.StringFlag{Name: "address", Usage: "shipping address (print/framed)"},
			&cli.StringFlag{Name: "notes", Usage: "notes for the designer"},
			&cli.StringFlag{Name: "quantity", Value: "1", Usage: "number of posters"},
		},
		Action: submit,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func submit(c *cli.Context) error {
	if !catalog.ValidVibe(c.String("vibe")) {
		return fmt.Errorf("unknown vibe %q", c.String("vibe"))
	}
	if !catalog.ValidTier(c.String("tier")) {
		return fmt.Errorf("unknown tier %q", c.String("tier"))
	}

	photoPath := c.String("photo")
	data, err := os.ReadFile(photoPath)
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(photoPath))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	f := funnel.New(c.String("server") + "/api/holiday-movie-poster/order")
	f.SelectVibe(catalog.Vibe(c.String("vibe")))
	f.SelectTier(catalog.Tier(c.String("tier")))
	f.SetName(c.String("name"))
	f.SetEmail(c.String("email"))
	f.SetPhone(c.String("phone"))
	f.SetAddress(c.String("address"))
	f.SetNotes(c.String("notes"))
	f.SetQuantity(c.String("quantity"))

	if !f.AttachFile(filepath.Base(photoPath), mimeType, data) {
		return fmt.Errorf("photo rejected: %s", f.Err())
	}

	fmt.Printf("Order total: $%s (%s x%d)\n", f.Total(), c.String("tier"), f.Quantity())

	result, err := f.Submit(context.Background())
	if err != nil {
		return fmt.Errorf("order failed: %w", err)
	}

	if result.CheckoutURL != "" {
		fmt.Printf("Complete payment at: %s\n", result.CheckoutURL)
		return nil
	}
	fmt.Println(result.Message)
	if result.OrderID != "" {
		fmt.Printf("Order id: %s\n", result.OrderID)
	}
	return nil
}
