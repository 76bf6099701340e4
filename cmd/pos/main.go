package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/vaishnavisherala/RestaurantSystem/client"
)

// Thin terminal shell over the client package. All lifecycle rules live in
// client; this loop only reads keys and prints state.

type app struct {
	gw   *client.Client
	ctrl *client.Controller
	sess *client.Session
	in   *bufio.Scanner
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to client config")
	flag.Parse()

	cfg, err := client.ParseConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gw := client.NewClient(cfg.Gateway.BaseURL, cfg.Timeout())
	a := &app{
		gw:   gw,
		ctrl: client.NewController(gw),
		in:   bufio.NewScanner(os.Stdin),
	}

	ctx := context.Background()
	if !a.authLoop(ctx) {
		return
	}
	if err := a.ctrl.Refresh(ctx); err != nil {
		log.Fatalf("initial fetch: %v", err)
	}
	a.mainLoop(ctx)
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) authLoop(ctx context.Context) bool {
	for {
		switch a.prompt("[1] login  [2] signup  [0] quit > ") {
		case "1":
			id := a.prompt("username or email: ")
			pw := a.prompt("password: ")
			pair, err := a.gw.Login(ctx, id, pw)
			if err != nil {
				fmt.Println("login failed:", err)
				continue
			}
			a.sess = client.NewSession(pair.Access)
			fmt.Println("logged in as", a.sess.Username)
			return true
		case "2":
			name := a.prompt("username: ")
			email := a.prompt("email: ")
			pw := a.prompt("password: ")
			if _, err := a.gw.Signup(ctx, name, email, pw); err != nil {
				fmt.Println("signup failed:", err)
				continue
			}
			fmt.Println("account created, log in to continue")
		case "0", "":
			return false
		}
	}
}

func (a *app) mainLoop(ctx context.Context) {
	for {
		fmt.Printf("\ncart: %d items, total %s", a.ctrl.Cart().Len(), a.ctrl.Cart().Total())
		if id := a.ctrl.SelectedTable(); id != 0 {
			fmt.Printf(", table #%d", id)
		} else {
			fmt.Print(", delivery")
		}
		fmt.Println()

		switch a.prompt("[1] menu  [2] cart  [3] table  [4] place order  [5] orders  [6] dashboard  [r] refresh  [0] quit > ") {
		case "1":
			a.showMenu()
		case "2":
			a.editCart()
		case "3":
			a.pickTable()
		case "4":
			a.placeOrder(ctx)
		case "5":
			a.ordersAndCheckout(ctx)
		case "6":
			a.dashboard(ctx)
		case "r":
			if err := a.ctrl.Refresh(ctx); err != nil {
				fmt.Println("refresh failed:", err)
			}
		case "0", "":
			return
		}
	}
}

func (a *app) showMenu() {
	for _, it := range a.ctrl.Menu() {
		if !it.Available {
			continue
		}
		fmt.Printf("  [%d] %-24s %8s  %s\n", it.ID, it.Name, it.Price, it.Description)
	}
	if s := a.prompt("add item id (empty to skip): "); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("not a number")
			return
		}
		for _, it := range a.ctrl.Menu() {
			if it.ID == id {
				a.ctrl.Cart().Add(it)
				fmt.Println("added", it.Name)
				return
			}
		}
		fmt.Println("no such item")
	}
}

func (a *app) editCart() {
	for _, l := range a.ctrl.Cart().Lines() {
		fmt.Printf("  [%d] %-24s x%d  %s\n", l.Item.ID, l.Item.Name, l.Quantity, l.Subtotal())
	}
	switch a.prompt("[+] more  [-] fewer  [d] delete  (anything else: back) > ") {
	case "+":
		if id, err := strconv.Atoi(a.prompt("item id: ")); err == nil {
			a.ctrl.Cart().AdjustQuantity(id, 1)
		}
	case "-":
		if id, err := strconv.Atoi(a.prompt("item id: ")); err == nil {
			a.ctrl.Cart().AdjustQuantity(id, -1)
		}
	case "d":
		if id, err := strconv.Atoi(a.prompt("item id: ")); err == nil {
			a.ctrl.Cart().Remove(id)
		}
	}
}

func (a *app) pickTable() {
	tables := a.ctrl.AvailableTables()
	if len(tables) == 0 {
		fmt.Println("no tables available right now")
	}
	for _, t := range tables {
		fmt.Printf("  [%d] table %s (%d seats)\n", t.ID, t.Number, t.Seats)
	}
	s := a.prompt("table id (empty = delivery order): ")
	if s == "" {
		a.ctrl.ClearTable()
		return
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("not a number")
		return
	}
	if err := a.ctrl.SelectTable(id); err != nil {
		fmt.Println(err)
	}
}

func (a *app) placeOrder(ctx context.Context) {
	order, err := a.ctrl.PlaceOrder(ctx)
	if err != nil {
		// table races and validation both land here; cart is untouched
		fmt.Println("place order failed:", err)
		return
	}
	fmt.Printf("order #%d placed, total %s\n", order.ID, order.TotalPrice)
}

func (a *app) ordersAndCheckout(ctx context.Context) {
	if err := a.ctrl.RefreshOrders(ctx); err != nil {
		fmt.Println("fetch orders failed:", err)
		return
	}
	for _, o := range a.ctrl.Orders() {
		table := "delivery"
		if o.Table != nil {
			table = "table " + o.Table.Number
		}
		fmt.Printf("  [%d] %-9s %-10s %8s  %s\n", o.ID, o.Status, table, o.TotalPrice, o.CreatedAt.Format("02 Jan 15:04"))
	}

	s := a.prompt("checkout order id (empty to skip): ")
	if s == "" {
		return
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("not a number")
		return
	}
	name := a.prompt("payer name: ")
	phone := a.prompt("payer phone: ")

	confirm := func() bool {
		return strings.EqualFold(a.prompt("complete checkout? this cannot be undone [y/N]: "), "y")
	}
	order, err := a.ctrl.Checkout(ctx, id, name, phone, confirm)
	if err != nil {
		if client.IsConflict(err) {
			fmt.Println("order was settled by another session; list refreshed")
			return
		}
		fmt.Println("checkout failed:", err)
		return
	}
	fmt.Printf("order #%d completed, table released\n", order.ID)
}

func (a *app) dashboard(ctx context.Context) {
	d, err := client.LoadDashboard(ctx, a.gw, a.sess)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("free tables: %d   in-place: %d   delivery: %d   active: %d\n",
		d.Stats.FreeTables, d.Stats.InPlaceOrders, d.Stats.DeliveryOrders, d.Stats.ActiveOrders)

	fmt.Println("in-place orders:")
	for _, o := range d.InPlace {
		fmt.Printf("  #%d %s table %s total %s\n", o.ID, o.User.Username, o.Table.Number, o.TotalPrice)
	}
	fmt.Println("delivery orders:")
	for _, o := range d.Delivery {
		fmt.Printf("  #%d %s total %s\n", o.ID, o.User.Username, o.TotalPrice)
	}
	fmt.Println("users:")
	for _, u := range d.Users {
		fmt.Printf("  #%d %s %s\n", u.ID, u.Username, u.Email)
	}
}
