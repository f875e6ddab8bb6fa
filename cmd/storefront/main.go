package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"TechModa/internal/catalog"
	"TechModa/internal/storefront"
)

const usage = `usage: storefront <command> [flags]

commands:
  list    [-search term] [-category name]
  get     -id <id>
  create  -name <name> -price <price> [-description d] [-category c] [-stock n] [-image url]
  update  -id <id> [-name n] [-description d] [-price p] [-category c] [-image url]
  delete  -id <id>

The API address comes from CATALOG_API_URL.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctrl := storefront.NewController(storefront.NewClient(storefront.ResolveBaseURL()))
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, ctrl, os.Args[2:])
	case "get":
		err = runGet(ctx, ctrl, os.Args[2:])
	case "create":
		err = runCreate(ctx, ctrl, os.Args[2:])
	case "update":
		err = runUpdate(ctx, ctrl, os.Args[2:])
	case "delete":
		err = runDelete(ctx, ctrl, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runList(ctx context.Context, ctrl *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "search term for name/description")
	category := fs.String("category", storefront.AllCategories, "category filter")
	fs.Parse(args)

	ctrl.EnsureLoaded(ctx)
	if msg := ctrl.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	products := storefront.Filter(ctrl.Products(), *search, *category)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%d\n", p.ID, p.Name, p.Price, p.Category, p.Stock)
	}
	return w.Flush()
}

func runGet(ctx context.Context, ctrl *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	fs.Parse(args)

	ctrl.EnsureLoaded(ctx)
	for _, p := range ctrl.Products() {
		if p.ID == *id {
			printProduct(p)
			return nil
		}
	}
	return fmt.Errorf("producto %s no encontrado", *id)
}

func runCreate(ctx context.Context, ctrl *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	price := fs.Float64("price", 0, "product price")
	description := fs.String("description", "", "description")
	category := fs.String("category", "", "category")
	stock := fs.Int("stock", 0, "stock units")
	image := fs.String("image", "", "image URL")
	fs.Parse(args)

	n := catalog.Number(*price)
	res := ctrl.Create(ctx, catalog.ProductInput{
		Name:        name,
		Price:       &n,
		Description: *description,
		Category:    *category,
		Stock:       *stock,
		ImageURL:    *image,
	})
	if !res.OK {
		return fmt.Errorf("%s", res.Err)
	}

	p := ctrl.Products()[0]
	fmt.Println("created", p.ID)
	return nil
}

func runUpdate(ctx context.Context, ctrl *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	name := fs.String("name", "", "new name")
	description := fs.String("description", "", "new description")
	price := fs.Float64("price", -1, "new price")
	category := fs.String("category", "", "new category")
	image := fs.String("image", "", "new image URL")
	fs.Parse(args)

	var patch catalog.ProductPatch
	if *name != "" {
		patch.Name = name
	}
	if *description != "" {
		patch.Description = description
	}
	if *price >= 0 {
		n := catalog.Number(*price)
		patch.Price = &n
	}
	if *category != "" {
		patch.Category = category
	}
	if *image != "" {
		patch.ImageURL = image
	}

	if res := ctrl.Update(ctx, *id, patch); !res.OK {
		return fmt.Errorf("%s", res.Err)
	}
	fmt.Println("updated", *id)
	return nil
}

func runDelete(ctx context.Context, ctrl *storefront.Controller, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	fs.Parse(args)

	if res := ctrl.Delete(ctx, *id); !res.OK {
		return fmt.Errorf("%s", res.Err)
	}
	fmt.Println("deleted", *id)
	return nil
}

func printProduct(p catalog.Product) {
	fmt.Printf("id:          %s\n", p.ID)
	fmt.Printf("name:        %s\n", p.Name)
	fmt.Printf("description: %s\n", p.Description)
	fmt.Printf("price:       %.2f\n", p.Price)
	fmt.Printf("category:    %s\n", p.Category)
	fmt.Printf("stock:       %d\n", p.Stock)
	fmt.Printf("image_url:   %s\n", p.ImageURL)
	fmt.Printf("created_at:  %s\n", p.CreatedAt)
	fmt.Printf("updated_at:  %s\n", p.UpdatedAt)
}
