package tmstore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

var fieldEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// ExportPairs writes every stored pair to w as tab-separated
// source, target, kind and cost columns, ordered by creation time.
// Tabs and newlines inside segments are flattened to spaces.
func (s *Store) ExportPairs(ctx context.Context, w io.Writer) (int64, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT source_text, target_text, kind, cost FROM pairs ORDER BY created_at, digest",
	)
	if err != nil {
		return 0, fmt.Errorf("query pairs: %w", err)
	}
	defer rows.Close()

	bw := bufio.NewWriter(w)
	var exported int64
	for rows.Next() {
		var sourceText, targetText, kind string
		var cost int
		if err := rows.Scan(&sourceText, &targetText, &kind, &cost); err != nil {
			return exported, fmt.Errorf("scan pair: %w", err)
		}
		record := fieldEscaper.Replace(sourceText) + "\t" +
			fieldEscaper.Replace(targetText) + "\t" +
			kind + "\t" +
			strconv.Itoa(cost) + "\n"
		if _, err := bw.WriteString(record); err != nil {
			return exported, fmt.Errorf("write pair: %w", err)
		}
		exported++
	}
	if err := rows.Err(); err != nil {
		return exported, fmt.Errorf("iterate pairs: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return exported, fmt.Errorf("flush export: %w", err)
	}
	return exported, nil
}

// ExportFile exports all pairs to path, compressing with xz when the
// path carries an .xz extension.
func (s *Store) ExportFile(ctx context.Context, path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}

	var dest io.Writer = file
	var xzw *xz.Writer
	if strings.HasSuffix(path, ".xz") {
		xzw, err = xz.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return 0, fmt.Errorf("create xz writer: %w", err)
		}
		dest = xzw
	}

	exported, exportErr := s.ExportPairs(ctx, dest)
	if xzw != nil {
		if err := xzw.Close(); err != nil && exportErr == nil {
			exportErr = fmt.Errorf("close xz writer: %w", err)
		}
	}
	if err := file.Close(); err != nil && exportErr == nil {
		exportErr = fmt.Errorf("close export file: %w", err)
	}
	return exported, exportErr
}
