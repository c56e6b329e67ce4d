package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/everfind/everfind/pkg/engine"
	"github.com/everfind/everfind/pkg/query"
	"github.com/urfave/cli/v3"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the file index",
		ArgsUsage: "<pattern>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "regex",
				Usage: "Treat the pattern as a regular expression",
			},
			&cli.BoolFlag{
				Name:  "match-case",
				Usage: "Match case-sensitively",
			},
			&cli.BoolFlag{
				Name:  "match-path",
				Usage: "Match against the full path instead of the name",
			},
			&cli.BoolFlag{
				Name:  "whole-word",
				Usage: "Match whole words only",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort key: name, path, size, extension, type, created, modified, accessed, attributes",
				Value: "name",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Sort in descending order",
			},
			&cli.StringSliceFlag{
				Name:  "meta",
				Usage: "Metadata to fetch per item: size, created, modified, accessed, attributes, all",
			},
			&cli.UintFlag{
				Name:  "offset",
				Usage: "Skip the first N results",
			},
			&cli.UintFlag{
				Name:  "limit",
				Usage: "Maximum number of results (0 means unlimited)",
				Value: 50,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return searchIndex(c, c.Args().First())
		},
	}
}

func searchIndex(c *cli.Command, pattern string) error {
	_, idx, err := openIndex(c.String("config"))
	if err != nil {
		return err
	}
	defer func() {
		if err := idx.Close(); err != nil {
			fmt.Printf("Warning: failed to close index: %v\n", err)
		}
	}()

	s := query.New(pattern)
	if c.Bool("regex") {
		s = query.NewRegex(pattern)
	}
	s = s.MatchCase(c.Bool("match-case")).
		MatchPath(c.Bool("match-path")).
		MatchWholeWord(c.Bool("whole-word"))

	key, err := parseSortKey(c.String("sort"))
	if err != nil {
		return err
	}
	order := query.Ascending
	if c.Bool("desc") {
		order = query.Descending
	}
	s = s.SortBy(key, order)

	meta, err := parseMetadata(c.StringSlice("meta"))
	if err != nil {
		return err
	}
	s = s.RequestMetadata(meta)

	offset := uint32(c.Uint("offset"))
	limit := uint32(c.Uint("limit"))
	r := query.From(offset)
	if limit > 0 {
		r = query.Between(offset, offset+limit)
	}

	engine.SetDefault(idx)
	items := s.QueryRange(r)

	if len(items) == 0 {
		fmt.Println(noResultsStyle.Render("No results found"))
		return nil
	}

	for _, item := range items {
		fmt.Println(formatItem(item))
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d results", len(items))))
	return nil
}

func parseSortKey(name string) (query.SortKey, error) {
	switch strings.ToLower(name) {
	case "name":
		return query.SortByName, nil
	case "path":
		return query.SortByPath, nil
	case "size":
		return query.SortBySize, nil
	case "extension", "ext":
		return query.SortByExtension, nil
	case "type":
		return query.SortByTypeName, nil
	case "created":
		return query.SortByDateCreated, nil
	case "modified":
		return query.SortByDateModified, nil
	case "accessed":
		return query.SortByDateAccessed, nil
	case "attributes":
		return query.SortByAttributes, nil
	default:
		return 0, fmt.Errorf("unknown sort key %q", name)
	}
}

func parseMetadata(names []string) (query.Metadata, error) {
	var meta query.Metadata
	for _, name := range names {
		switch strings.ToLower(name) {
		case "size":
			meta |= query.MetadataSize
		case "created":
			meta |= query.MetadataDateCreated
		case "modified":
			meta |= query.MetadataDateModified
		case "accessed":
			meta |= query.MetadataDateAccessed
		case "attributes", "attrs":
			meta |= query.MetadataAttributes
		case "all":
			meta |= query.MetadataSize | query.MetadataDateCreated | query.MetadataDateModified |
				query.MetadataDateAccessed | query.MetadataAttributes
		default:
			return 0, fmt.Errorf("unknown metadata field %q", name)
		}
	}
	return meta, nil
}
