package sync

import "github.com/iudanet/gophdraw/internal/models"

// ChunkSize количество точек в одном сообщении chunk
const ChunkSize = 6

// SplitChunks делит точки штриха на пакеты по size без копирования
func SplitChunks(points []models.Point, size int) [][]models.Point {
	if size <= 0 {
		size = ChunkSize
	}

	chunks := make([][]models.Point, 0, (len(points)+size-1)/size)
	for start := 0; start < len(points); start += size {
		end := min(start+size, len(points))
		chunks = append(chunks, points[start:end:end])
	}
	return chunks
}
