package cache

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.trai.ch/pyrelgen/internal/core/domain"
)

func compress(format domain.CacheFormat, data []byte) ([]byte, error) {
	switch format {
	case domain.CacheFormatJSONZstd:
		return compressZstd(data)
	case domain.CacheFormatJSONLZ4:
		return compressLZ4(data)
	default:
		return data, nil
	}
}

func decompress(format domain.CacheFormat, data []byte) ([]byte, error) {
	switch format {
	case domain.CacheFormatJSONZstd:
		return decompressZstd(data)
	case domain.CacheFormatJSONLZ4:
		return decompressLZ4(data)
	default:
		return data, nil
	}
}

func compressZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// The lz4 variant uses the framed format so the file carries its own checksums and size.

func compressLZ4(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(lz4.ChecksumOption(true)); err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}
