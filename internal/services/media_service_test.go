package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zensolve/jobportal-admin/internal/common"
	"github.com/zensolve/jobportal-admin/internal/models"
)

func bannerUpload() UploadInput {
	return UploadInput{
		Title:       "Banner",
		Description: "Homepage banner",
		Filename:    "banner.png",
		ContentType: "image/png",
		Size:        8,
		Body:        strings.NewReader("PNGBYTES"),
	}
}

func drain(t *testing.T, progress <-chan UploadProgress) (percents []float64, terminal UploadProgress) {
	t.Helper()
	sawTerminal := false
	for ev := range progress {
		if ev.Done {
			require.False(t, sawTerminal, "exactly one terminal event")
			sawTerminal = true
			terminal = ev
			continue
		}
		percents = append(percents, ev.Percent)
	}
	require.True(t, sawTerminal, "sequence must end with a terminal event")
	return percents, terminal
}

func TestScreenshotUploadSucceeds(t *testing.T) {
	repo := &fakeMediaRepo{}
	blobs := newFakeBlobStore()
	blobs.progress = []float64{25, 50, 75}
	panel := NewScreenshotPanel(repo, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)

	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)
	require.NotNil(t, terminal.Asset)

	assets, err := panel.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Banner", assets[0].Title)
	assert.Equal(t, "Homepage banner", assets[0].Description)
	assert.Equal(t, blobs.PublicURL(assets[0].ObjectKey), assets[0].AssetURL)
	assert.Contains(t, blobs.objects, assets[0].ObjectKey, "URL resolves to a stored blob")
}

func TestUploadProgressIsMonotonic(t *testing.T) {
	blobs := newFakeBlobStore()
	// The store may report out of order; the panel must not.
	blobs.progress = []float64{10, 5, 60, 30, 90}
	panel := NewScreenshotPanel(&fakeMediaRepo{}, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)

	percents, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)
	assert.Equal(t, []float64{10, 60, 90}, percents)
	assert.Equal(t, 100.0, terminal.Percent)
}

func TestScreenshotUploadRequiresMetadata(t *testing.T) {
	blobs := newFakeBlobStore()
	panel := NewScreenshotPanel(&fakeMediaRepo{}, blobs)

	in := bannerUpload()
	in.Title = ""
	_, err := panel.Upload(context.Background(), in)

	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
	assert.Empty(t, blobs.objects, "validated before any remote call")
}

func TestScreenshotUploadRejectsNonImage(t *testing.T) {
	panel := NewScreenshotPanel(&fakeMediaRepo{}, newFakeBlobStore())

	in := bannerUpload()
	in.ContentType = "application/pdf"
	_, err := panel.Upload(context.Background(), in)

	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestLogoUploadSkipsMetadata(t *testing.T) {
	panel := NewLogoPanel(&fakeMediaRepo{}, newFakeBlobStore())

	in := UploadInput{Filename: "acme.svg", Size: 3, Body: strings.NewReader("svg")}
	progress, err := panel.Upload(context.Background(), in)
	require.NoError(t, err)

	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)
	assert.True(t, strings.HasPrefix(terminal.Asset.ObjectKey, "logos/"))
}

func TestUploadRegisterFailureLeavesOrphanBlob(t *testing.T) {
	repo := &fakeMediaRepo{createErr: common.NewError(common.CodeRemoteWrite, "registering asset failed", nil)}
	blobs := newFakeBlobStore()
	panel := NewScreenshotPanel(repo, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)

	_, terminal := drain(t, progress)
	require.Error(t, terminal.Err)
	assert.True(t, common.Is(terminal.Err, common.CodeRemoteWrite))
	assert.Len(t, blobs.objects, 1, "blob stays; orphan is accepted")
	assert.Empty(t, repo.assets)
}

func TestUploadBlobFailure(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.uploadErr = common.NewError(common.CodeUpload, "partial transfer", nil)
	panel := NewScreenshotPanel(&fakeMediaRepo{}, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)

	_, terminal := drain(t, progress)
	assert.True(t, common.Is(terminal.Err, common.CodeUpload))
}

func TestDeleteAssetRemovesDocumentAndBlob(t *testing.T) {
	repo := &fakeMediaRepo{}
	blobs := newFakeBlobStore()
	panel := NewScreenshotPanel(repo, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)
	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)

	require.NoError(t, panel.Delete(context.Background(), terminal.Asset.ID.Hex()))
	assert.Empty(t, repo.assets)
	assert.Empty(t, blobs.objects)
}

func TestDeleteAssetDocumentFailureLeavesBlob(t *testing.T) {
	repo := &fakeMediaRepo{}
	blobs := newFakeBlobStore()
	panel := NewScreenshotPanel(repo, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)
	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)

	repo.deleteErr = common.NewError(common.CodeRemoteWrite, "deleting from images failed", nil)
	err = panel.Delete(context.Background(), terminal.Asset.ID.Hex())

	require.Error(t, err)
	assert.Len(t, repo.assets, 1, "item stays visible for retry")
	assert.Len(t, blobs.objects, 1)
}

func TestDeleteAssetBlobFailureIsReported(t *testing.T) {
	repo := &fakeMediaRepo{}
	blobs := newFakeBlobStore()
	panel := NewScreenshotPanel(repo, blobs)

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)
	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)

	blobs.deleteErr = common.NewError(common.CodeRemoteWrite, "deleting blob failed", nil)
	err = panel.Delete(context.Background(), terminal.Asset.ID.Hex())

	require.Error(t, err)
	assert.Len(t, blobs.objects, 1, "orphan blob after partial delete")
}

func TestUploadedAssetShape(t *testing.T) {
	repo := &fakeMediaRepo{}
	panel := NewScreenshotPanel(repo, newFakeBlobStore())

	progress, err := panel.Upload(context.Background(), bannerUpload())
	require.NoError(t, err)
	_, terminal := drain(t, progress)
	require.NoError(t, terminal.Err)

	var asset models.MediaAsset = *terminal.Asset
	assert.False(t, asset.ID.IsZero())
	assert.True(t, strings.HasPrefix(asset.ObjectKey, "screenshots/"))
	assert.True(t, strings.HasSuffix(asset.ObjectKey, ".png"))
}
