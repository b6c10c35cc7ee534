package main

import (
	"context"
	"fmt"
	"time"

	"blocktix/internal/catalog"
	"blocktix/internal/store"
)

// bootstrapDemoData seeds the demo catalog on an empty database so a fresh
// instance has something to sell.
func bootstrapDemoData(ctx context.Context, dataStore *store.Store) error {
	count, err := dataStore.EventCount(ctx)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, ev := range demoEvents() {
		if err := dataStore.CreateEvent(ctx, ev); err != nil {
			return fmt.Errorf("seed event %q: %w", ev.Title, err)
		}
	}
	return nil
}

func demoEvents() []catalog.Event {
	date := func(value string) time.Time {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			panic(err)
		}
		return t
	}

	return []catalog.Event{
		{
			ID:               "1",
			Title:            "Blockchain Developer Conference",
			Description:      "Join us for the premier blockchain developer conference featuring keynote speakers from Polygon, Ethereum, and other leading projects. Network with industry experts, attend workshops, and learn about the latest advancements in blockchain technology.",
			Date:             date("2025-06-15T09:00:00Z"),
			Location:         "San Francisco, CA",
			Image:            "https://images.pexels.com/photos/7688336/pexels-photo-7688336.jpeg",
			Price:            0.05,
			AvailableTickets: 120,
			TotalTickets:     300,
			Category:         "conference",
			IsFeatured:       true,
			Organizer:        "Blockchain Developers Association",
		},
		{
			ID:               "2",
			Title:            "Crypto Music Festival",
			Description:      "Experience the world's first fully blockchain-powered music festival. All tickets are NFTs, and artists will be releasing exclusive NFT collections during the event. Multiple stages, camping options, and food vendors available.",
			Date:             date("2025-07-22T16:00:00Z"),
			Location:         "Austin, TX",
			Image:            "https://images.pexels.com/photos/1190297/pexels-photo-1190297.jpeg",
			Price:            0.15,
			AvailableTickets: 850,
			TotalTickets:     2000,
			Category:         "music",
			IsFeatured:       true,
			Organizer:        "Crypto Entertainment Group",
		},
		{
			ID:               "3",
			Title:            "NFT Art Exhibition",
			Description:      "Explore the intersection of traditional art and blockchain technology at our NFT Art Exhibition. Featured artists will be displaying physical works alongside their digital NFT counterparts. Interactive displays and VR experiences included.",
			Date:             date("2025-05-10T10:00:00Z"),
			Location:         "New York, NY",
			Image:            "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg",
			Price:            0.02,
			AvailableTickets: 75,
			TotalTickets:     200,
			Category:         "art",
			Organizer:        "Digital Art Collective",
		},
		{
			ID:               "4",
			Title:            "Web3 Startup Pitch Competition",
			Description:      "Watch innovative Web3 startups compete for $100,000 in funding. Teams will pitch their ideas to a panel of industry judges and venture capitalists. Networking opportunities and refreshments provided.",
			Date:             date("2025-08-05T13:00:00Z"),
			Location:         "Miami, FL",
			Image:            "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg",
			Price:            0.03,
			AvailableTickets: 150,
			TotalTickets:     300,
			Category:         "business",
			Organizer:        "Web3 Founders Club",
		},
		{
			ID:               "5",
			Title:            "Polygon Hackathon",
			Description:      "Put your blockchain development skills to the test in this 48-hour hackathon. Build decentralized applications on the Polygon network, compete for prizes, and receive mentorship from Polygon core developers.",
			Date:             date("2025-09-18T09:00:00Z"),
			Location:         "Berlin, Germany",
			Image:            "https://images.pexels.com/photos/7103/writing-notes-idea-conference.jpg",
			Price:            0.01,
			AvailableTickets: 50,
			TotalTickets:     200,
			Category:         "hackathon",
			IsFeatured:       true,
			Organizer:        "Polygon Foundation",
		},
		{
			ID:               "6",
			Title:            "Crypto Sports Cup",
			Description:      "Watch top e-sports teams compete in this blockchain-sponsored tournament. Games include League of Legends, Dota 2, and CS:GO. Fan tokens available for team support and exclusive merch.",
			Date:             date("2025-10-05T14:00:00Z"),
			Location:         "Los Angeles, CA",
			Image:            "https://images.pexels.com/photos/159745/tablet-screen-devices-computer-159745.jpeg",
			Price:            0.05,
			AvailableTickets: 1000,
			TotalTickets:     5000,
			Category:         "sports",
			Organizer:        "Crypto Gaming League",
		},
		{
			ID:               "7",
			Title:            "DeFi Summit",
			Description:      "Dive deep into the world of decentralized finance at the annual DeFi Summit. Learn about yield farming, lending protocols, stablecoins, and more from the industry's leading projects and developers.",
			Date:             date("2025-04-12T08:00:00Z"),
			Location:         "Singapore",
			Image:            "https://images.pexels.com/photos/6476254/pexels-photo-6476254.jpeg",
			Price:            0.08,
			AvailableTickets: 0,
			TotalTickets:     500,
			Category:         "finance",
			Organizer:        "Global DeFi Association",
		},
		{
			ID:               "8",
			Title:            "Blockchain Film Festival",
			Description:      "A showcase of films and documentaries about blockchain technology, cryptocurrency, and digital privacy. Special screening of \"Trust No One: The Hunt for the Crypto King\" followed by director Q&A.",
			Date:             date("2025-11-20T18:00:00Z"),
			Location:         "Toronto, Canada",
			Image:            "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg",
			Price:            0.02,
			AvailableTickets: 200,
			TotalTickets:     300,
			Category:         "entertainment",
			Organizer:        "Crypto Cinema Collective",
		},
	}
}
