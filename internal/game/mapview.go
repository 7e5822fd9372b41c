package game

import (
	"fmt"
	"sort"
	"strings"
)

// directionDelta projects compass directions onto the map grid. Up and
// down have no place on a flat map; they are listed under it instead.
var directionDelta = map[string][2]int{
	"north":     {0, -1},
	"south":     {0, 1},
	"east":      {1, 0},
	"west":      {-1, 0},
	"northeast": {1, -1},
	"northwest": {-1, -1},
	"southeast": {1, 1},
	"southwest": {-1, 1},
}

type mapCell struct {
	id      int
	visited bool
}

// RenderMap draws the explored part of the labyrinth. Only chambers the
// player has visited are placed; exits into the unknown show as [??].
func (e *Engine) RenderMap() string {
	progress := e.player.Progress
	if progress.VisitedCount() == 0 {
		return "You have not explored anything yet."
	}

	// Lay chambers out by walking the discovered connections from the
	// start. Coordinates come from the direction names, so loops in the
	// graph can collide; the first chamber to claim a cell keeps it.
	origin := e.world.StartingID()
	if !progress.HasVisited(origin) {
		origin = e.world.CurrentID()
	}

	cells := make(map[[2]int]mapCell)
	placed := map[int][2]int{origin: {0, 0}}
	cells[[2]int{0, 0}] = mapCell{id: origin, visited: true}
	queue := []int{origin}

	var stairs []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		pos := placed[id]

		exits := progress.KnownExits(id)
		dirs := make([]string, 0, len(exits))
		for dir := range exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)

		for _, dir := range dirs {
			target := exits[dir]
			if dir == "up" || dir == "down" {
				stairs = append(stairs, fmt.Sprintf("chamber %d leads %s", id, dir))
				continue
			}
			delta, ok := directionDelta[dir]
			if !ok {
				continue
			}
			next := [2]int{pos[0] + delta[0], pos[1] + delta[1]}
			if _, taken := placed[target]; taken {
				continue
			}
			if _, occupied := cells[next]; occupied {
				continue
			}
			if progress.HasVisited(target) {
				placed[target] = next
				cells[next] = mapCell{id: target, visited: true}
				queue = append(queue, target)
			} else {
				cells[next] = mapCell{id: target}
			}
		}
	}

	minX, minY, maxX, maxY := 0, 0, 0, 0
	for pos := range cells {
		if pos[0] < minX {
			minX = pos[0]
		}
		if pos[0] > maxX {
			maxX = pos[0]
		}
		if pos[1] < minY {
			minY = pos[1]
		}
		if pos[1] > maxY {
			maxY = pos[1]
		}
	}

	var b strings.Builder
	b.WriteString("Labyrinth map (north is up):\n\n")
	for y := minY; y <= maxY; y++ {
		var row strings.Builder
		for x := minX; x <= maxX; x++ {
			cell, ok := cells[[2]int{x, y}]
			switch {
			case !ok:
				row.WriteString("      ")
			case !cell.visited:
				row.WriteString(" [??] ")
			default:
				row.WriteString(e.renderCell(cell.id))
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}

	sort.Strings(stairs)
	for _, s := range stairs {
		b.WriteString(s + "\n")
	}
	b.WriteString("\n[@n] you are here  [*n] cleared  [??] unexplored")
	return b.String()
}

func (e *Engine) renderCell(id int) string {
	marker := " "
	switch {
	case id == e.world.CurrentID():
		marker = "@"
	case e.player.Progress.HasCompleted(id):
		marker = "*"
	}
	return fmt.Sprintf("[%s%-2d] ", marker, id)
}
