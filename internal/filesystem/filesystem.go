// Package filesystem solves day 7, No Space Left On Device.
package filesystem

import (
	"path"
	"slices"
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

const (
	DiskSize   = 70000000
	NeededFree = 30000000
	SmallLimit = 100000
)

// Sizes maps each directory path ("/", "/a", "/a/e", ...) to the total size
// of the files below it.
type Sizes map[string]int

// Replay walks a terminal transcript of cd and ls commands. Listing the
// same directory twice does not count its files twice.
func Replay(transcript string) (Sizes, error) {
	sizes := Sizes{"/": 0}
	listed := make(map[string]bool)
	var cwd []string
	var listing string

	for _, line := range strings.Split(transcript, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "$" {
			listing = ""
			if len(fields) < 2 {
				return nil, puzzle.Tokenf(line, "missing user input")
			}
			switch fields[1] {
			case "cd":
				if len(fields) != 3 {
					return nil, puzzle.Tokenf(line, "cd takes exactly one directory")
				}
				switch dir := fields[2]; dir {
				case "/":
					cwd = cwd[:0]
				case "..":
					if len(cwd) == 0 {
						return nil, puzzle.Tokenf(line, "can't return from root")
					}
					cwd = cwd[:len(cwd)-1]
				default:
					cwd = append(cwd, dir)
				}
			case "ls":
				dir := "/" + path.Join(cwd...)
				if !listed[dir] {
					listed[dir] = true
					listing = dir
				}
			default:
				return nil, puzzle.Tokenf(fields[1], "not a valid command")
			}
			continue
		}

		if len(fields) != 2 {
			return nil, puzzle.Tokenf(line, "expected a size or dir followed by a name")
		}
		if fields[0] == "dir" {
			full := path.Join("/", path.Join(cwd...), fields[1])
			if _, ok := sizes[full]; !ok {
				sizes[full] = 0
			}
			continue
		}
		size, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, puzzle.Tokenf(fields[0], "%v", err)
		}
		if listing == "" {
			continue // repeated listing
		}
		dir := "/"
		sizes[dir] += int(size)
		for _, part := range cwd {
			dir = path.Join(dir, part)
			sizes[dir] += int(size)
		}
	}
	return sizes, nil
}

// SumAtMost adds up every directory no larger than limit.
func (s Sizes) SumAtMost(limit int) int {
	sum := 0
	for _, v := range s {
		if v <= limit {
			sum += v
		}
	}
	return sum
}

// SmallestFreeing returns the smallest directory whose removal leaves at
// least needed bytes free on a disk of the given size.
func (s Sizes) SmallestFreeing(disk, needed int) (int, error) {
	free := disk - s["/"]
	var candidates []int
	for _, v := range s {
		if free+v >= needed {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, puzzle.Tokenf("/", "no folder is large enough for delete")
	}
	return slices.Min(candidates), nil
}

// Solver answers day 7.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 7 }
func (Solver) Title() string { return "No Space Left On Device" }

func (Solver) PartOne(input string) (string, error) {
	sizes, err := Replay(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sizes.SumAtMost(SmallLimit)), nil
}

func (Solver) PartTwo(input string) (string, error) {
	sizes, err := Replay(input)
	if err != nil {
		return "", err
	}
	n, err := sizes.SmallestFreeing(DiskSize, NeededFree)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
