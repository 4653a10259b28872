package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/joho/godotenv"
)

// Flips permission flags on a user without going through the API, e.g.
//
//	update-user-permissions -username mary -sales true -inventory false
func main() {
	username := flag.String("username", "", "username of the user to update")
	inventory := flag.String("inventory", "", "can update inventory (true/false)")
	sales := flag.String("sales", "", "can report sales (true/false)")
	customers := flag.String("customers", "", "can create customers (true/false)")
	createTabs := flag.String("create-tabs", "", "can create tabs (true/false)")
	updateTabs := flag.String("update-tabs", "", "can update tabs (true/false)")
	manageUsers := flag.String("manage-users", "", "can manage users (true/false)")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: update-user-permissions -username <name> [-sales true] ...")
		os.Exit(2)
	}

	_ = godotenv.Load()
	config.ConnectDB()

	var user models.User
	if err := config.DB.Where("username = ?", *username).First(&user).Error; err != nil {
		fmt.Fprintf(os.Stderr, "user %q does not exist\n", *username)
		os.Exit(1)
	}

	updates := map[string]interface{}{}
	setFlag := func(column, value string) {
		switch value {
		case "true":
			updates[column] = true
		case "false":
			updates[column] = false
		case "":
		default:
			fmt.Fprintf(os.Stderr, "invalid value %q for %s (want true/false)\n", value, column)
			os.Exit(2)
		}
	}
	setFlag("can_update_inventory", *inventory)
	setFlag("can_report_sales", *sales)
	setFlag("can_create_customers", *customers)
	setFlag("can_create_tabs", *createTabs)
	setFlag("can_update_tabs", *updateTabs)
	setFlag("can_manage_users", *manageUsers)

	if len(updates) == 0 {
		fmt.Println("nothing to update")
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to update permissions: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("updated permissions for %q\n", *username)
}
