// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/models"
)

// maxChunkRunes caps the size of a single knowledge chunk. Uploads are split
// on paragraph boundaries first, then on sentence boundaries when a single
// paragraph overruns the cap.
const maxChunkRunes = 500

// documentService is the concrete implementation of DocumentService. It
// extracts plain text from uploaded files, splits it into chunks and hands
// the chunks to the knowledge service for embedding and storage.
type documentService struct {
	knowledge KnowledgeService
	logger    *logger.Logger
}

// NewDocumentService constructs a DocumentService feeding the given
// KnowledgeService.
func NewDocumentService(knowledge KnowledgeService, logger *logger.Logger) DocumentService {
	return &documentService{knowledge: knowledge, logger: logger}
}

// ProcessUpload extracts text from the uploaded file, chunks it and stores
// the chunks in the knowledge base.
//
// Supported extensions are .txt, .md and .docx. PDF uploads are rejected
// with ErrUnsupportedFileType. Returns ErrEmptyDocument when extraction
// yields no usable text.
func (d *documentService) ProcessUpload(ctx context.Context, filename, source, category string, data []byte) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	text, err := extractText(filename, data)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("text extraction ended with error")
		return models.UploadResponse{}, err
	}

	chunks := chunkText(text, maxChunkRunes)
	if len(chunks) == 0 {
		return models.UploadResponse{}, ErrEmptyDocument
	}

	if source == "" {
		source = "file_upload"
	}

	docs := make([]models.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = models.Document{
			Text:     chunk,
			Source:   source,
			Category: category,
			Filename: filepath.Base(filename),
			Chunk:    i,
		}
	}

	stored, err := d.knowledge.AddDocuments(ctx, docs)
	if err != nil {
		return models.UploadResponse{}, err
	}

	stats, err := d.knowledge.Stats(ctx)
	if err != nil {
		return models.UploadResponse{}, err
	}

	log.Info().Str("filename", filename).Int("chunks", len(stored)).Msg("document ingested")

	return models.UploadResponse{
		Message:         fmt.Sprintf("successfully processed %s", filepath.Base(filename)),
		ChunksProcessed: len(stored),
		TotalDocuments:  stats.TotalDocuments,
	}, nil
}

// extractText converts an uploaded file to plain text based on its extension.
func extractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return string(data), nil
	case ".docx":
		return extractDocxText(data)
	case ".pdf":
		return "", fmt.Errorf("%w: pdf extraction is not available", ErrUnsupportedFileType)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

// extractDocxText pulls paragraph text out of a docx archive. A docx file is
// a zip whose word/document.xml holds the text in <w:t> runs; paragraphs
// (<w:p>) become newline-separated lines.
func extractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx archive ended with error: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			if docXML, err = f.Open(); err != nil {
				return "", fmt.Errorf("opening docx document part ended with error: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: docx has no document part", ErrUnsupportedFileType)
	}
	defer docXML.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(docXML)
	inTextRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding docx xml ended with error: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteString("\n\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

// chunkText splits text into chunks of at most maxRunes runes. Paragraphs
// are kept together while they fit; an overlong paragraph is split on
// sentence boundaries, and a single overlong sentence is hard-cut.
func chunkText(text string, maxRunes int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		currentLen = 0
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		for _, piece := range splitLong(paragraph, maxRunes) {
			pieceLen := len([]rune(piece))
			if currentLen > 0 && currentLen+pieceLen+1 > maxRunes {
				flush()
			}
			if currentLen > 0 {
				current.WriteString(" ")
				currentLen++
			}
			current.WriteString(piece)
			currentLen += pieceLen
		}
	}
	flush()

	return chunks
}

// splitLong breaks a paragraph that exceeds maxRunes into sentence-sized
// pieces, hard-cutting any single sentence that is still too long.
func splitLong(paragraph string, maxRunes int) []string {
	if len([]rune(paragraph)) <= maxRunes {
		return []string{paragraph}
	}

	var pieces []string
	for _, sentence := range splitSentences(paragraph) {
		runes := []rune(sentence)
		for len(runes) > maxRunes {
			pieces = append(pieces, strings.TrimSpace(string(runes[:maxRunes])))
			runes = runes[maxRunes:]
		}
		if trimmed := strings.TrimSpace(string(runes)); trimmed != "" {
			pieces = append(pieces, trimmed)
		}
	}
	return pieces
}

// splitSentences splits on sentence-final punctuation, keeping the
// punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i, r := range runes {
		if r == '.' || r == '!' || r == '?' {
			if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
