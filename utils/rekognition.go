package utils

import (
	"context"
	"fmt"

	appcfg "github.com/jiyuan880304-cmd/fitfocus/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	log "github.com/sirupsen/logrus"
)

var rekClient *rekognition.Client

func InitRekognition() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(appcfg.C.AWSRegion),
	)
	if err != nil {
		log.Fatalf("unable to load AWS config: %v", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

const moderationMinConfidence = 80

// ModerateImage runs the uploaded avatar/motivation photo through
// Rekognition moderation and rejects it when an unsafe label comes back
// above the confidence floor. A moderation outage does not block the
// upload; it is logged and the image passes.
func ModerateImage(imageBytes []byte) error {
	if rekClient == nil {
		return nil
	}

	out, err := rekClient.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: imageBytes},
		MinConfidence: func() *float32 { v := float32(moderationMinConfidence); return &v }(),
	})
	if err != nil {
		log.WithError(err).Warn("moderation check failed, accepting image")
		return nil
	}

	for _, l := range out.ModerationLabels {
		if l.Name != nil && *l.Name != "" {
			return fmt.Errorf("image rejected by moderation: %s", *l.Name)
		}
	}
	return nil
}
