// Package reserved provides commands whose names are reserved while the underlying searches are not built yet.
// Each command parses its arguments and calls the corresponding search, so it starts working once the search does.
package reserved

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yelphelp/yelphelp"
	"github.com/yelphelp/yelphelp/yelp"
)

const defaultLimit = 5

// Identifiers lists the reserved command keywords.
var Identifiers = []string{"nearby", "events", "top", "closest", "findme", "reviews", "statusupdate"}

// Searcher defines the search operations the reserved commands call.
// *yelp.Client satisfies this.
type Searcher interface {
	NearbyByAddress(ctx context.Context, address string, limit int) (*yelp.SearchResult, error)
	TopByAddress(ctx context.Context, address string, limit int) (*yelp.SearchResult, error)
	ClosestByAddress(ctx context.Context, address string, limit int) (*yelp.SearchResult, error)
	BusinessByCategory(ctx context.Context, address string, category string) (*yelp.SearchResult, error)
	ReviewsByName(ctx context.Context, address string, name string) (*yelp.ReviewsResult, error)
	EventsByPoint(ctx context.Context, latitude float64, longitude float64, limit int) (*yelp.EventsResult, error)
}

var _ Searcher = (*yelp.Client)(nil)

// Commands builds all reserved commands with the given Searcher.
func Commands(searcher Searcher) []yelphelp.Command {
	return []yelphelp.Command{
		build("nearby", "Nearby 1 Main St, Hamilton", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			address := yelphelp.StripCommand(input.Message())
			if address == "" {
				return nil, yelphelp.ErrParseMiss
			}
			return businesses(input, func() (*yelp.SearchResult, error) {
				return searcher.NearbyByAddress(ctx, address, defaultLimit)
			})
		}),
		build("events", "Events 43.2557 -79.8711", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			latitude, longitude, ok := parsePoint(yelphelp.StripCommand(input.Message()))
			if !ok {
				return nil, yelphelp.ErrParseMiss
			}

			result, err := searcher.EventsByPoint(ctx, latitude, longitude, defaultLimit)
			if err != nil {
				return nil, translate(input, err)
			}

			lines := []string{fmt.Sprintf("*Hey %s, here are some events around:*", input.Sender.Mention())}
			for _, event := range result.Events {
				lines = append(lines, fmt.Sprintf("> %s (%s)", event.Name, event.TimeStart))
			}
			return &yelphelp.CommandResponse{Content: strings.Join(lines, "\n")}, nil
		}),
		build("top", "Top 1 Main St, Hamilton", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			address := yelphelp.StripCommand(input.Message())
			if address == "" {
				return nil, yelphelp.ErrParseMiss
			}
			return businesses(input, func() (*yelp.SearchResult, error) {
				return searcher.TopByAddress(ctx, address, defaultLimit)
			})
		}),
		build("closest", "Closest 1 Main St, Hamilton", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			address := yelphelp.StripCommand(input.Message())
			if address == "" {
				return nil, yelphelp.ErrParseMiss
			}
			return businesses(input, func() (*yelp.SearchResult, error) {
				return searcher.ClosestByAddress(ctx, address, defaultLimit)
			})
		}),
		build("findme", "FindMe sushi 1 Main St, Hamilton", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			category, address, ok := cut(yelphelp.StripCommand(input.Message()), " ")
			if !ok {
				return nil, yelphelp.ErrParseMiss
			}
			return businesses(input, func() (*yelp.SearchResult, error) {
				return searcher.BusinessByCategory(ctx, address, category)
			})
		}),
		build("reviews", "Reviews Joe's Diner at 1 Main St, Hamilton", func(ctx context.Context, input *yelphelp.Input) (*yelphelp.CommandResponse, error) {
			name, address, ok := cut(yelphelp.StripCommand(input.Message()), " at ")
			if !ok {
				return nil, yelphelp.ErrParseMiss
			}

			result, err := searcher.ReviewsByName(ctx, address, name)
			if err != nil {
				return nil, translate(input, err)
			}

			lines := []string{fmt.Sprintf("*Hey %s, here is what people say about %s:*", input.Sender.Mention(), name)}
			for _, review := range result.Reviews {
				lines = append(lines, fmt.Sprintf("> %.1f: %s", review.Rating, review.Text))
			}
			return &yelphelp.CommandResponse{Content: strings.Join(lines, "\n")}, nil
		}),
		build("statusupdate", "", yelphelp.NotImplemented),
	}
}

func build(identifier string, instruction string, fn func(context.Context, *yelphelp.Input) (*yelphelp.CommandResponse, error)) yelphelp.Command {
	return yelphelp.NewCommandBuilder().
		Identifier(identifier).
		Instruction(instruction).
		Func(fn).
		MustBuild()
}

func businesses(input *yelphelp.Input, search func() (*yelp.SearchResult, error)) (*yelphelp.CommandResponse, error) {
	result, err := search()
	if err != nil {
		return nil, translate(input, err)
	}

	lines := []string{fmt.Sprintf("*Hey %s, I think I found what you're looking for:*", input.Sender.Mention())}
	for _, business := range result.Businesses {
		lines = append(lines, fmt.Sprintf("> %s (%.1f)", business.Name, business.Rating))
	}
	return &yelphelp.CommandResponse{Content: strings.Join(lines, "\n")}, nil
}

// translate tells Dispatcher that the search is not built yet, rather than that it failed.
func translate(input *yelphelp.Input, err error) error {
	if errors.Is(err, yelp.ErrNotImplemented) {
		return fmt.Errorf("%s: %w", input.Command, yelphelp.ErrNotImplemented)
	}
	return err
}

func cut(s string, sep string) (string, string, bool) {
	before, after, found := strings.Cut(s, sep)
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	if !found || before == "" || after == "" {
		return "", "", false
	}
	return before, after, true
}

func parsePoint(s string) (float64, float64, bool) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return 0, 0, false
	}

	latitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, false
	}

	longitude, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, false
	}

	return latitude, longitude, true
}
