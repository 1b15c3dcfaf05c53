//
// libfoundit is a client that interacts with the foundit API for reporting lost items.
//

// Create client
//
//	client, err := libfoundit.NewDefaultClient("http://localhost:4000")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Report a lost item
//
//	item, err := client.CreateLostItem(libfoundit.LostItemParams{
//		Title:       "Wallet",
//		Description: "Brown leather wallet",
//		Category:    "documents",
//		Location:    "Gym",
//		Date:        "2025-11-02",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Reported with id", item.ID)
//
// Browse the board
//
//	items, err := client.ListLostItems() // Newest first.
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, item := range items {
//		fmt.Println(item.CreatedAt, item.Title, "@", item.Location)
//	}
package libfoundit
