package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	fat12 "github.com/ndntri/FAT12---File-System-Reader"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "fat12",
		Usage:   "inspect FAT12 floppy images without mounting them",
		Version: "1.0.0",

		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print the volume geometry",
				ArgsUsage: "<image>",
				Action:    infoAction,
			},
			{
				Name:      "ls",
				Usage:     "list a directory of the image",
				ArgsUsage: "<image>",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "cluster",
						Aliases: []string{"c"},
						Usage:   "first cluster of the directory, 0 for the root",
					},
				},
				Action: lsAction,
			},
			{
				Name:      "cat",
				Usage:     "print the contents of a file",
				ArgsUsage: "<image> <path>",
				Action:    catAction,
			},
			{
				Name:      "browse",
				Usage:     "navigate the image interactively",
				ArgsUsage: "<image>",
				Action:    browseAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func mountArg(c *cli.Context) (*fat12.Volume, error) {
	if c.Args().Len() < 1 {
		return nil, cli.Exit("please provide an image file", 1)
	}
	return fat12.MountPath(c.Args().Get(0))
}

func infoAction(c *cli.Context) error {
	vol, err := mountArg(c)
	if err != nil {
		return err
	}
	defer vol.Unmount()

	geo := vol.Geometry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Volume label:\t%s\n", vol.Label())
	fmt.Fprintf(w, "Bytes per sector:\t%d\n", geo.BytesPerSector)
	fmt.Fprintf(w, "Sectors per cluster:\t%d\n", geo.SectorsPerCluster)
	fmt.Fprintf(w, "Cluster size:\t%d\n", geo.ClusterSize)
	fmt.Fprintf(w, "Number of FATs:\t%d\n", geo.NumFATs)
	fmt.Fprintf(w, "Sectors per FAT:\t%d\n", geo.SectorsPerFAT)
	fmt.Fprintf(w, "Root entries:\t%d\n", geo.RootEntryCount)
	fmt.Fprintf(w, "Root directory start:\t%d\n", geo.RootDirStart)
	fmt.Fprintf(w, "Data area start:\t%d\n", geo.DataAreaStart)
	fmt.Fprintf(w, "Total sectors:\t%d\n", geo.TotalSectors)
	return w.Flush()
}

func lsAction(c *cli.Context) error {
	vol, err := mountArg(c)
	if err != nil {
		return err
	}
	defer vol.Unmount()

	entries, err := vol.ReadDir(uint16(c.Uint("cluster")))
	if err != nil {
		return err
	}

	printEntries(os.Stdout, entries)
	return nil
}

func printEntries(out *os.File, entries []fat12.DirEntry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tMODIFIED\tCLUSTER\tSIZE")
	for i := range entries {
		info := entries[i].FileInfo()

		kind := "File"
		if info.IsDir() {
			kind = "Folder"
		}

		modified := ""
		if !info.ModTime().IsZero() {
			modified = info.ModTime().Format("2006-01-02 15:04:05")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", info.Name(), kind, modified, entries[i].FirstCluster(), info.Size())
	}
	w.Flush()
}

func catAction(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("please provide an image file and a path inside of it", 1)
	}

	image, err := os.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer image.Close()

	fsys, err := fat12.New(image)
	if err != nil {
		return err
	}

	file, err := fsys.Open(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return cli.Exit(fmt.Sprintf("%s is a directory", stat.Name()), 1)
	}

	buffer := make([]byte, stat.Size())
	if _, err := file.Read(buffer); err != nil {
		return err
	}

	_, err = os.Stdout.Write(buffer)
	return err
}

// browseAction walks the volume with a numbered menu: a number descends into
// a folder or prints a file, 0 returns to the parent directory, q exits.
func browseAction(c *cli.Context) error {
	vol, err := mountArg(c)
	if err != nil {
		return err
	}
	defer vol.Unmount()

	// The trail of directory clusters back to the root.
	breadcrumbs := []uint16{fat12.RootDirCluster}
	scanner := bufio.NewScanner(os.Stdin)

	for {
		current := breadcrumbs[len(breadcrumbs)-1]
		entries, err := vol.ReadDir(current)
		if err != nil {
			return err
		}

		fmt.Printf("\n    %s\n", vol.Label())
		fmt.Println("    Press 0 to return to the previous directory, q to exit.")
		for i := range entries {
			info := entries[i].FileInfo()
			kind := "File"
			if info.IsDir() {
				kind = "Folder"
			}
			fmt.Printf("    %3d. %-12s  %-6s  %8d\n", i+1, info.Name(), kind, info.Size())
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := scanner.Text()
		if input == "q" {
			return nil
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 0 || choice > len(entries) {
			fmt.Println("invalid selection")
			continue
		}

		if choice == 0 {
			if len(breadcrumbs) > 1 {
				breadcrumbs = breadcrumbs[:len(breadcrumbs)-1]
			}
			continue
		}

		entry := entries[choice-1]
		if entry.IsDir() {
			breadcrumbs = append(breadcrumbs, entry.FirstCluster())
			continue
		}

		if err := printFile(vol, entry); err != nil {
			fmt.Println(err)
		}
	}
}

// printFile dumps the contents of the file described by entry, bounded by
// the logical file size. The final cluster carries padding behind the end
// of the file which must not be shown.
func printFile(vol *fat12.Volume, entry fat12.DirEntry) error {
	// Empty files own no cluster at all.
	if entry.FileSize == 0 {
		fmt.Println()
		return nil
	}

	clusters, err := vol.ReadFile(entry.FirstCluster())
	if err != nil {
		return err
	}

	remaining := int64(entry.FileSize)
	for _, cluster := range clusters {
		if remaining <= 0 {
			break
		}
		if int64(len(cluster)) > remaining {
			cluster = cluster[:remaining]
		}
		if _, err := os.Stdout.Write(cluster); err != nil {
			return err
		}
		remaining -= int64(len(cluster))
	}
	fmt.Println()

	return nil
}
