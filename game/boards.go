package game

// Built-in board data. Transport types are ignored: every edge is a
// plain connection.

// topRightEdges is the extended "top right" board: the local 1-20
// subgraph plus a region to the right (21-35) and a handful of
// far-reaching underground-like links.
var topRightEdges = [][2]int{
	// base local graph (1-20)
	{1, 8}, {1, 9},
	{2, 10}, {2, 20},
	{3, 4}, {3, 11}, {3, 12},
	{4, 13},
	{5, 15}, {5, 16},
	{6, 7},
	{7, 17},
	{8, 18}, {8, 19},
	{9, 19}, {9, 20},
	{10, 11},
	{13, 14},
	{14, 15},
	{15, 16},

	// extended region (21-35)
	{20, 21}, {21, 22}, {22, 23}, {23, 24},
	{24, 25}, {25, 26}, {26, 27}, {27, 28},
	{19, 29}, {29, 30}, {30, 31}, {31, 32},
	{30, 33}, {31, 34}, {32, 35},
	{33, 34}, {34, 35},
	{11, 23}, {12, 25}, {2, 24}, {21, 29},
	{25, 30}, {26, 31}, {28, 32},

	// far-reaching connections
	{1, 24}, {2, 29}, {3, 28}, {5, 30},
	{6, 22}, {9, 27}, {12, 33}, {14, 34},
	{17, 31}, {18, 35},
}

// CreateTopRightBoard returns the standard board used by the built-in
// scenarios: nodes 1-35, undirected, uniform movement.
func CreateTopRightBoard() *Board {
	return NewBoard(topRightEdges)
}
