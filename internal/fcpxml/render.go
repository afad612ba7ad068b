package fcpxml

import (
	"fmt"
	"strings"

	"mixtape/internal/timecode"
)

// effectConfig is the opaque plug-in payload Final Cut Pro stores on every
// Cross Dissolve instance.
const effectConfig = "YnBsaXN0MDDUAQIDBAUGBwpYJHZlcnNpb25ZJGFyY2hpdmVyVCR0b3BYJG9iamVjdHMSAAGGoF8QD05TS2V5ZWRBcmNoaXZlctEICVRyb290gAGlCwwVFhdVJG51bGzTDQ4PEBIUV05TLmtleXNaTlMub2JqZWN0c1YkY2xhc3OhEYACoROAA4AEXXBsdWdpblZlcnNpb24QAdIYGRobWiRjbGFzc25hbWVYJGNsYXNzZXNfEBNOU011dGFibGVEaWN0aW9uYXJ5oxocHVxOU0RpY3Rpb25hcnlYTlNPYmplY3QIERokKTI3SUxRU1lfZm55gIKEhoiKmJqfqrPJzdoAAAAAAAABAQAAAAAAAAAeAAAAAAAAAAAAAAAAAAAA4w=="

// staticOpacity is the placeholder param every non-final spine carries; the
// final spine replaces it with a keyframed ramp.
const staticOpacity = `<param name="Opacity" key="9999/10003/13260/11488/4/13051/1000/1044" value="0"/>`

const spineTemplate = `            <!-- Track %[1]d: %[2]s - %[3]s - duration: %[4]s -->
            <spine lane="2" offset="%[3]s">
                <title ref="r6" offset="0s" name="Track %[1]d" start="86495409/24000s" duration="%[4]s">
                    <param name="Layout Method" key="9999/10003/13260/11488/2/314" value="1 (Paragraph)"/>
                    <param name="Left Margin" key="9999/10003/13260/11488/2/323" value="-1728"/>
                    <param name="Right Margin" key="9999/10003/13260/11488/2/324" value="1728"/>
                    <param name="Top Margin" key="9999/10003/13260/11488/2/325" value="-794"/>
                    <param name="Bottom Margin" key="9999/10003/13260/11488/2/326" value="-966.1"/>
                    <param name="Auto-Shrink" key="9999/10003/13260/11488/2/370" value="3 (To All Margins)"/>
                    %[5]s
                    <param name="Animate" key="9999/10003/13260/11488/4/13051/201/203" value="3 (Line)"/>
                    <param name="Spread" key="9999/10003/13260/11488/4/13051/201/204" value="5"/>
                    <param name="Speed" key="9999/10003/13260/11488/4/13051/201/208" value="6 (Custom)"/>
                    <param name="Custom Speed" key="9999/10003/13260/11488/4/13051/201/209">
                        <keyframeAnimation>
                            <keyframe time="0s" value="0"/>
                            <keyframe time="10s" value="1"/>
                        </keyframeAnimation>
                    </param>
                    <param name="Apply Speed" key="9999/10003/13260/11488/4/13051/201/211" value="2 (Per Object)"/>
                    <param name="Start Offset" key="9999/10003/13260/11488/4/13051/201/235" value="34"/>
                    <param name="Layout Method" key="9999/10003/13260/3296674397/2/314" value="1 (Paragraph)"/>
                    <param name="Left Margin" key="9999/10003/13260/3296674397/2/323" value="-1728"/>
                    <param name="Right Margin" key="9999/10003/13260/3296674397/2/324" value="1728"/>
                    <param name="Top Margin" key="9999/10003/13260/3296674397/2/325" value="972"/>
                    <param name="Bottom Margin" key="9999/10003/13260/3296674397/2/326" value="-770.338"/>
                    <param name="Line Spacing" key="9999/10003/13260/3296674397/2/354/3296667315/404" value="-19"/>
                    <param name="Auto-Shrink" key="9999/10003/13260/3296674397/2/370" value="3 (To All Margins)"/>
                    <param name="Alignment" key="9999/10003/13260/3296674397/2/373" value="0 (Left) 2 (Bottom)"/>
                    <param name="Opacity" key="9999/10003/13260/3296674397/4/3296674797/1000/1044" value="0"/>
                    <param name="Animate" key="9999/10003/13260/3296674397/4/3296674797/201/203" value="3 (Line)"/>
                    <param name="Spread" key="9999/10003/13260/3296674397/4/3296674797/201/204" value="5"/>
                    <param name="Speed" key="9999/10003/13260/3296674397/4/3296674797/201/208" value="6 (Custom)"/>
                    <param name="Custom Speed" key="9999/10003/13260/3296674397/4/3296674797/201/209">
                        <keyframeAnimation>
                            <keyframe time="-71680/153600s" value="0"/>
                            <keyframe time="1896960/153600s" value="1"/>
                        </keyframeAnimation>
                    </param>
                    <param name="Apply Speed" key="9999/10003/13260/3296674397/4/3296674797/201/211" value="2 (Per Object)"/>
                    <text>
                        <text-style ref="ts%[7]d">%[2]s</text-style>
                    </text>
                    <text>
                        <text-style ref="ts%[8]d">%[6]s</text-style>
                    </text>
                    <text-style-def id="ts%[7]d">
                        <text-style font="Exan" fontSize="112" fontFace="Regular" fontColor="1 1 1 1" lineSpacing="-19"/>
                    </text-style-def>
                    <text-style-def id="ts%[8]d">
                        <text-style font="Exan" fontSize="88" fontFace="Regular" fontColor="1 1 1 1" tabStops="724.965C"/>
                    </text-style-def>
                </title>%[9]s
            </spine>`

const fadeOpacityTemplate = `<param name="Opacity" key="9999/10003/13260/11488/4/13051/1000/1044">
                        <keyframeAnimation>
                            <keyframe time="0s" value="0"/>
                            <keyframe time="10s" value="1"/>
                            <keyframe time="%ss" value="1"/>
                            <keyframe time="%ss" value="0"/>
                        </keyframeAnimation>
                    </param>`

const transitionTemplate = `
                <transition name="Cross Dissolve" offset="%s" duration="80080/24000s">
                    <filter-video ref="r2" name="Cross Dissolve">
                        <data key="effectConfig">%s</data>
                        <param name="Look" key="1" value="11 (Video)"/>
                        <param name="Amount" key="2" value="50"/>
                        <param name="Ease" key="50" value="2 (In &amp; Out)"/>
                        <param name="Ease Amount" key="51" value="0"/>
                    </filter-video>
                    <filter-audio ref="r3" name="Audio Crossfade"/>
                </transition>`

// renderSpine renders one title spine. The final spine's decorations are
// part of this single rendering pass: the opacity ramp replaces the static
// param and a cross-dissolve is emitted before the spine closes.
func renderSpine(s Spine) string {
	opacity := staticOpacity
	transition := ""
	if s.FadeOut {
		durationSeconds := s.Duration.Seconds()
		fadeStart := durationSeconds - fadeOutSeconds
		if fadeStart < 0 {
			fadeStart = 0
		}
		opacity = fmt.Sprintf(fadeOpacityTemplate,
			timecode.FormatSeconds(fadeStart),
			timecode.FormatSeconds(durationSeconds),
		)

		transitionOffset := timecode.Frames(int64(s.Offset) + int64(s.Duration) - fadeOutTicks)
		transition = fmt.Sprintf(transitionTemplate, transitionOffset, effectConfig)
	}

	return fmt.Sprintf(spineTemplate,
		s.Index,
		escapeXML(s.Artist),
		s.Offset,
		s.Duration,
		opacity,
		escapeXML(s.Title),
		s.Index*2-1,
		s.Index*2,
		transition,
	)
}

const documentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE fcpxml>

<fcpxml version="1.12">
    <resources>
        <format id="r1" name="FFVideoFormat1080p2398" frameDuration="1001/24000s" width="1920" height="1080" colorSpace="1-1-1 (Rec. 709)"/>
        <effect id="r2" name="Cross Dissolve" uid="FxPlug:4731E73A-8DAC-4113-9A30-AE85B1761265"/>
        <effect id="r3" name="Audio Crossfade" uid="FFAudioTransition"/>
        <asset id="r4" name="%[1]s" uid="3B99218479C6DBC057F5497D83AC6517" start="0s" duration="0s" hasVideo="1" format="r5" videoSources="1">
            <media-rep kind="original-media" sig="3B99218479C6DBC057F5497D83AC6517" src="%[2]s"/>
            <metadata>
                <md key="com.apple.proapps.studio.rawToLogConversion" value="0"/>
                <md key="com.apple.proapps.studio.cameraISO" value="0"/>
                <md key="com.apple.proapps.studio.cameraColorTemperature" value="0"/>
                <md key="com.apple.proapps.mio.ingestDate" value="2025-09-14 12:47:20 -0600"/>
                <md key="com.apple.proapps.spotlight.kMDItemOrientation" value="0"/>
            </metadata>
        </asset>
        <format id="r5" name="FFVideoFormatRateUndefined" width="1920" height="1080" colorSpace="1-13-1"/>
        <effect id="r6" name="Lower Third Text &amp; Subhead" uid=".../Titles.localized/Basic Text.localized/Lower Third Text &amp; Subhead.localized/Lower Third Text &amp; Subhead.moti"/>
        <asset id="r7" name="%[1]s" uid="6FCB7FC43C8E68F64EB9EC1C5AE17A37" start="0s" duration="300779456/44100s" hasAudio="1" audioSources="1" audioChannels="2" audioRate="44100">
            <media-rep kind="original-media" sig="6FCB7FC43C8E68F64EB9EC1C5AE17A37" src="%[3]s"/>
            <metadata>
                <md key="com.apple.proapps.mio.ingestDate" value="2025-09-14 12:48:05 -0600"/>
            </metadata>
        </asset>
    </resources>
    <library location="%[4]s">
        <event name="2024-11-18" uid="%[5]s">
            <project name="%[1]s" uid="%[6]s" modDate="2025-12-25 16:16:24 -0700">
                <sequence format="r1" duration="166023858/24000s" tcStart="0s" tcFormat="NDF" renderFormat="FFRenderFormatProRes422LT" audioLayout="stereo" audioRate="44.1k">
                    <spine>
                        <gap name="Gap" offset="0s" start="86400314/24000s" duration="1001/24000s">
                            <spine lane="1" offset="43200157/12000s">
                                <transition name="Cross Dissolve" offset="0s" duration="17017/24000s">
                                    <filter-video ref="r2" name="Cross Dissolve">
                                        <data key="effectConfig">%[8]s</data>
                                        <param name="Look" key="1" value="11 (Video)"/>
                                        <param name="Amount" key="2" value="50"/>
                                        <param name="Ease" key="50" value="2 (In &amp; Out)"/>
                                        <param name="Ease Amount" key="51" value="0"/>
                                    </filter-video>
                                    <filter-audio ref="r3" name="Audio Crossfade"/>
                                </transition>
                                <video ref="r4" offset="0s" name="%[1]s" start="3600s" duration="163688525/24000s"/>
                                <transition name="Cross Dissolve" offset="163602439/24000s" duration="86086/24000s">
                                    <filter-video ref="r2" name="Cross Dissolve">
                                        <data key="effectConfig">%[8]s</data>
                                        <param name="Look" key="1" value="11 (Video)"/>
                                        <param name="Amount" key="2" value="50"/>
                                        <param name="Ease" key="50" value="2 (In &amp; Out)"/>
                                        <param name="Ease Amount" key="51" value="0"/>
                                    </filter-video>
                                    <filter-audio ref="r3" name="Audio Crossfade"/>
                                </transition>
                            </spine>
                        </gap>
                        <asset-clip ref="r7" offset="1001/24000s" name="%[1]s" duration="163688525/24000s" audioRole="music">
%[7]s
                        </asset-clip>
                    </spine>
                </sequence>
            </project>
        </event>
        <smart-collection name="Projects" match="all">
            <match-clip rule="is" type="project"/>
        </smart-collection>
        <smart-collection name="All Video" match="any">
            <match-media rule="is" type="videoOnly"/>
            <match-media rule="is" type="videoWithAudio"/>
        </smart-collection>
        <smart-collection name="Audio Only" match="all">
            <match-media rule="is" type="audioOnly"/>
        </smart-collection>
        <smart-collection name="Stills" match="all">
            <match-media rule="is" type="stills"/>
        </smart-collection>
        <smart-collection name="Favorites" match="all">
            <match-ratings value="favorites"/>
        </smart-collection>
    </library>
</fcpxml>
`

// Render assembles the complete timeline document.
func (d *Document) Render() string {
	rendered := make([]string, len(d.Spines))
	for i, spine := range d.Spines {
		rendered[i] = renderSpine(spine)
	}

	return fmt.Sprintf(documentTemplate,
		escapeXML(d.Name),
		d.ImageURL,
		d.AudioURL,
		d.LibraryLocation,
		d.EventUID,
		d.ProjectUID,
		strings.Join(rendered, "\n"),
		effectConfig,
	)
}
