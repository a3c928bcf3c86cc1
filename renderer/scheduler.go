package renderer

// Frames are split into blocks of this many rows.
const rowsPerBlock = 8

// Split frameH rows into blocks of blockH rows. The last block gets the
// remaining rows when frameH is not a multiple of blockH.
func splitRows(frameH, blockH uint32) []uint32 {
	if frameH == 0 {
		return nil
	}
	if blockH == 0 || blockH > frameH {
		blockH = frameH
	}

	numBlocks := (frameH + blockH - 1) / blockH
	blockAssignment := make([]uint32, numBlocks)
	var scheduledRows uint32
	for idx := range blockAssignment {
		blockAssignment[idx] = blockH
		if remaining := frameH - scheduledRows; remaining < blockH {
			blockAssignment[idx] = remaining
		}
		scheduledRows += blockAssignment[idx]
	}

	return blockAssignment
}
